package graphics

import (
	"fmt"
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	GradientTypeNone GradientType = iota
	GradientTypeLinear
	GradientTypeRadial
)

func (t GradientType) String() string {
	switch t {
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start geom.Offset
	End   geom.Offset
	Stops []GradientStop
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center geom.Offset
	Radius float64
	Stops  []GradientStop
}

// Gradient describes a linear or radial gradient fill, recorded as a Paint
// field and resolved by the Canvas implementation at replay time.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
	Radial RadialGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end geom.Offset, stops []GradientStop) *Gradient {
	return &Gradient{Type: GradientTypeLinear, Linear: LinearGradient{Start: start, End: end, Stops: cloneGradientStops(stops)}}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center geom.Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{Type: GradientTypeRadial, Radial: RadialGradient{Center: center, Radius: radius, Stops: cloneGradientStops(stops)}}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return g.Type == GradientTypeLinear || g.Type == GradientTypeRadial
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

// Bounds returns the rectangle needed to fully render the gradient, as the
// union of widgetRect and the gradient's natural extent: never shrinks
// widgetRect.
func (g *Gradient) Bounds(widgetRect geom.Rect) geom.Rect {
	if g == nil || !g.IsValid() {
		return widgetRect
	}
	var gradientRect geom.Rect
	switch g.Type {
	case GradientTypeRadial:
		c, r := g.Radial.Center, g.Radial.Radius
		if r <= 0 {
			return widgetRect
		}
		gradientRect = geom.RectFromLTWH(c.X-r, c.Y-r, r*2, r*2)
	case GradientTypeLinear:
		s, e := g.Linear.Start, g.Linear.End
		gradientRect = geom.Rect{Left: math.Min(s.X, e.X), Top: math.Min(s.Y, e.Y), Right: math.Max(s.X, e.X), Bottom: math.Max(s.Y, e.Y)}
	default:
		return widgetRect
	}
	return widgetRect.Union(gradientRect)
}
