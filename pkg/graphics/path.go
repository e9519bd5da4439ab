package graphics

import "fmt"

// PathOp identifies a single path drawing operation.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpQuadTo
	PathOpCubicTo
	PathOpClose
)

func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// FillRule determines how path interiors are computed.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// PathCommand is a single recorded path operation and its coordinates.
type PathCommand struct {
	Op   PathOp
	Args []float64
}

// Path is a vector path usable with Canvas.DrawPath/ClipPath.
type Path struct {
	Commands []PathCommand
	FillRule FillRule
}

func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

func (p *Path) IsEmpty() bool { return len(p.Commands) == 0 }
