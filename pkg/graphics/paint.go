package graphics

// PaintStyle describes how a shape is filled or stroked.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
	PaintStyleFillAndStroke
)

// StrokeCap describes how open stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// BlendMode controls how source and destination colors composite.
type BlendMode int

const (
	BlendModeClear BlendMode = iota
	BlendModeSrc
	BlendModeSrcOver
	BlendModeDstOver
	BlendModeSrcIn
	BlendModeMultiply
)

// Paint describes the fill/stroke style for a draw command.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	StrokeCap   StrokeCap
	BlendMode   BlendMode
	// Alpha is overall opacity in [0,1], independent of Color's own alpha
	// channel; 0 is treated as "unset" (full opacity) by callers that build
	// a zero-value Paint rather than going through NewFillPaint.
	Alpha     float64
	AntiAlias bool
	// Gradient, when non-nil, overrides Color as the fill source.
	Gradient *Gradient
}

// NewFillPaint returns an anti-aliased, fully opaque fill paint with the
// given color.
func NewFillPaint(color Color) Paint {
	return Paint{Color: color, Style: PaintStyleFill, AntiAlias: true, Alpha: 1.0}
}

// BlurStyle and BoxShadow live in shadow.go (adapted from the teacher's
// pkg/graphics/shadow.go, which already matches this shape).
