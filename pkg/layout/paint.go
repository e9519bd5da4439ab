package layout

import (
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/graphics"
)

// TapTarget is a render object that responds to tap events.
type TapTarget interface {
	OnTap()
}

// PointerHandler receives pointer events routed from hit testing. The
// returned EventPropagation tells the router whether to keep dispatching to
// handlers further along the hit path (spec.md §4.5).
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent) gestures.EventPropagation
}

// PaintContext provides the canvas for painting render objects, tracking
// the accumulated translation and clip stack needed for culling.
type PaintContext struct {
	Canvas           graphics.Canvas
	clipStack        []geom.Rect
	transformStack   []geom.Offset
	transform        geom.Offset
	ShowLayoutBounds bool
	debugDepth       int
	DebugStrokeWidth float64
}

// PushTranslation adds a translation delta to the stack.
func (p *PaintContext) PushTranslation(dx, dy float64) {
	p.transformStack = append(p.transformStack, geom.Offset{X: dx, Y: dy})
	p.transform.X += dx
	p.transform.Y += dy
}

// PopTranslation removes the most recent translation from the stack.
func (p *PaintContext) PopTranslation() {
	if len(p.transformStack) == 0 {
		return
	}
	last := p.transformStack[len(p.transformStack)-1]
	p.transformStack = p.transformStack[:len(p.transformStack)-1]
	p.transform.X -= last.X
	p.transform.Y -= last.Y
}

// PushClipRect pushes a clip rectangle (in local coordinates), transformed
// to global coordinates and intersected with the current clip.
func (p *PaintContext) PushClipRect(localRect geom.Rect) {
	globalRect := localRect.Translate(p.transform.X, p.transform.Y)
	if len(p.clipStack) > 0 {
		globalRect = p.clipStack[len(p.clipStack)-1].Intersect(globalRect)
	}
	p.clipStack = append(p.clipStack, globalRect)
}

// PopClipRect removes the most recent clip rectangle.
func (p *PaintContext) PopClipRect() {
	if len(p.clipStack) > 0 {
		p.clipStack = p.clipStack[:len(p.clipStack)-1]
	}
}

// CurrentClipBounds returns the effective clip in global coordinates.
func (p *PaintContext) CurrentClipBounds() (geom.Rect, bool) {
	if len(p.clipStack) == 0 {
		return geom.Rect{}, false
	}
	return p.clipStack[len(p.clipStack)-1], true
}

// CurrentTransform returns the accumulated translation offset.
func (p *PaintContext) CurrentTransform() geom.Offset {
	return p.transform
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset geom.Offset) {
	if child == nil {
		return
	}
	if p.shouldCullChild(child, offset) {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	p.PushTranslation(offset.X, offset.Y)

	if p.ShowLayoutBounds {
		p.debugDepth++
	}

	child.Paint(p)

	if p.ShowLayoutBounds {
		p.drawDebugBounds(child.Size())
		p.debugDepth--
	}

	p.PopTranslation()
	p.Canvas.Restore()
}

// PaintChildWithLayer paints a child, replaying its cached layer instead of
// re-recording it when the child is a repaint boundary with a valid cache
// (spec.md §4.3).
func (p *PaintContext) PaintChildWithLayer(child RenderBox, offset geom.Offset) {
	if child == nil {
		return
	}
	if p.shouldCullChild(child, offset) {
		return
	}

	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	p.PushTranslation(offset.X, offset.Y)

	if p.ShowLayoutBounds {
		p.debugDepth++
	}

	if boundary, ok := child.(interface {
		IsRepaintBoundary() bool
		Layer() *graphics.Layer
		NeedsPaint() bool
	}); ok && boundary.IsRepaintBoundary() {
		if layer := boundary.Layer(); layer != nil && !boundary.NeedsPaint() {
			layer.PaintOnto(p.Canvas)
			if p.ShowLayoutBounds {
				p.drawDebugBounds(child.Size())
				p.debugDepth--
			}
			p.PopTranslation()
			p.Canvas.Restore()
			return
		}
	}

	child.Paint(p)

	if p.ShowLayoutBounds {
		p.drawDebugBounds(child.Size())
		p.debugDepth--
	}

	p.PopTranslation()
	p.Canvas.Restore()
}

// CompositeRoot composites the tree root onto canvas (spec.md §4.3
// composite()): when the root is a clean repaint boundary with a cached
// layer, its layer tree is walked via a CanvasSceneSink instead of
// re-painting, exactly as PaintChildWithLayer does for an interior boundary
// painted through a parent's PaintChild. The root has no parent to paint it
// through PaintChild, so this is that same logic applied at the tree's top.
func CompositeRoot(root RenderObject, canvas graphics.Canvas) {
	if root == nil {
		return
	}
	ctx := &PaintContext{Canvas: canvas}
	if boundary, ok := root.(interface {
		IsRepaintBoundary() bool
		Layer() *graphics.Layer
		NeedsPaint() bool
	}); ok && boundary.IsRepaintBoundary() {
		if layer := boundary.Layer(); layer != nil && !boundary.NeedsPaint() {
			layer.Composite(graphics.NewCanvasSceneSink(canvas))
			return
		}
	}
	root.Paint(ctx)
}

type paintBoundsProvider interface {
	PaintBounds() geom.Rect
}

// shouldCullChild returns true if the child's bounds do not intersect the
// current clip.
func (p *PaintContext) shouldCullChild(child RenderBox, offset geom.Offset) bool {
	if child == nil {
		return true
	}
	if clip, ok := p.CurrentClipBounds(); ok {
		var localRect geom.Rect
		if provider, ok := child.(paintBoundsProvider); ok {
			localRect = provider.PaintBounds()
			if localRect.IsEmpty() {
				return false
			}
		} else {
			size := child.Size()
			if size.Width <= 0 || size.Height <= 0 {
				return false
			}
			localRect = geom.RectFromLTWH(0, 0, size.Width, size.Height)
		}
		globalRect := localRect.Translate(p.transform.X+offset.X, p.transform.Y+offset.Y)
		if clip.Intersect(globalRect).IsEmpty() {
			return true
		}
	}
	return false
}

// debugBoundsColors cycles through colors by depth for visual distinction.
var debugBoundsColors = []graphics.Color{
	graphics.RGBA(255, 100, 100, 0.71),
	graphics.RGBA(100, 255, 100, 0.71),
	graphics.RGBA(100, 100, 255, 0.71),
	graphics.RGBA(255, 255, 100, 0.71),
	graphics.RGBA(255, 100, 255, 0.71),
	graphics.RGBA(100, 255, 255, 0.71),
}

// drawDebugBounds draws a colored border around the given size for debugging.
func (p *PaintContext) drawDebugBounds(size geom.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	color := debugBoundsColors[p.debugDepth%len(debugBoundsColors)]

	strokeWidth := p.DebugStrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 1.0
	}

	rect := geom.RectFromLTWH(0, 0, size.Width, size.Height)
	p.Canvas.DrawRect(rect, graphics.Paint{
		Color:       color,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: strokeWidth,
		BlendMode:   graphics.BlendModeSrcOver,
		Alpha:       1.0,
	})
}
