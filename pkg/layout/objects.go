package layout

import (
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/graphics"
)

// parentSetter lets the single-child container render objects below attach
// themselves as a child's parent without widening the RenderObject interface
// just for tree construction; every RenderBoxBase already exposes SetParent.
type parentSetter interface {
	SetParent(RenderObject)
}

func attachChild(parent, child RenderObject) {
	if child == nil {
		return
	}
	if setter, ok := child.(parentSetter); ok {
		setter.SetParent(parent)
	}
}

// RenderTransform applies a fixed 2D affine transform to a single child, at
// paint time via the canvas and at hit-test time by inverting the transform
// to map an incoming position into the child's local space (spec.md §3's
// RenderTransform, §4.5 scenario D). Always needs its own compositing layer,
// since its content is meaningless composited without the transform that
// positions it.
type RenderTransform struct {
	RenderBoxBase
	Transform geom.Matrix
	Child     RenderObject
}

// NewRenderTransform returns a RenderTransform wrapping child.
func NewRenderTransform(transform geom.Matrix, child RenderObject) *RenderTransform {
	t := &RenderTransform{Transform: transform, Child: child}
	t.SetSelf(t)
	attachChild(t, child)
	return t
}

// PerformLayout lays out the child with this node's own constraints and
// takes on its size; the transform applies on top without affecting layout,
// matching spec.md §4.2's Transform render object.
func (r *RenderTransform) PerformLayout() {
	if r.Child == nil {
		r.SetSize(geom.Size{})
		return
	}
	r.Child.Layout(r.Constraints(), true)
	r.SetSize(r.Child.Size())
}

func (r *RenderTransform) Paint(ctx *PaintContext) {
	if r.Child == nil {
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.Transform(r.Transform)
	r.Child.Paint(ctx)
	ctx.Canvas.Restore()
}

// HitTest inverts Transform to map position into the child's local space
// before testing it, and skips the subtree entirely when the transform has
// no inverse rather than dispatching against a meaningless mapping (spec.md
// §8 invariant 10).
func (r *RenderTransform) HitTest(position geom.Offset, result *HitTestResult) bool {
	if r.Child == nil {
		return false
	}
	inverse, invertible := r.Transform.Invert()
	if !invertible {
		return false
	}
	result.PushTransform(r.Transform)
	defer result.PopTransform()
	localPosition := inverse.Apply(position)
	return r.Child.HitTest(localPosition, result)
}

func (r *RenderTransform) IsRepaintBoundary() bool      { return true }
func (r *RenderTransform) AlwaysNeedsCompositing() bool { return true }

func (r *RenderTransform) VisitChildren(visitor func(RenderObject)) {
	if r.Child != nil {
		visitor(r.Child)
	}
}

// BuildLayer wraps the recorded picture in a LayerTransform node so the
// composited layer tree carries the same transform hit testing inverted
// (spec.md §4.3/§4.4).
func (r *RenderTransform) BuildLayer(picture *graphics.Layer) *graphics.Layer {
	container := &graphics.Layer{Kind: graphics.LayerTransform, Transform: r.Transform}
	container.AppendChild(picture)
	return container
}

// RenderOpacity paints a single child through a translucent layer (spec.md
// §3's RenderOpacity). Opacity doesn't affect hit testing: a fully
// transparent widget is still tappable, matching the rest of the pack's
// treatment of opacity as a paint-only concern.
type RenderOpacity struct {
	RenderBoxBase
	Opacity float64
	Child   RenderObject
}

// NewRenderOpacity returns a RenderOpacity wrapping child at the given
// opacity in [0,1].
func NewRenderOpacity(opacity float64, child RenderObject) *RenderOpacity {
	o := &RenderOpacity{Opacity: opacity, Child: child}
	o.SetSelf(o)
	attachChild(o, child)
	return o
}

func (r *RenderOpacity) PerformLayout() {
	if r.Child == nil {
		r.SetSize(geom.Size{})
		return
	}
	r.Child.Layout(r.Constraints(), true)
	r.SetSize(r.Child.Size())
}

func (r *RenderOpacity) Paint(ctx *PaintContext) {
	if r.Child == nil {
		return
	}
	size := r.Size()
	ctx.Canvas.SaveLayerAlpha(geom.RectFromLTWH(0, 0, size.Width, size.Height), r.Opacity)
	r.Child.Paint(ctx)
	ctx.Canvas.Restore()
}

func (r *RenderOpacity) HitTest(position geom.Offset, result *HitTestResult) bool {
	if r.Child == nil {
		return false
	}
	return r.Child.HitTest(position, result)
}

func (r *RenderOpacity) IsRepaintBoundary() bool      { return true }
func (r *RenderOpacity) AlwaysNeedsCompositing() bool { return true }

func (r *RenderOpacity) VisitChildren(visitor func(RenderObject)) {
	if r.Child != nil {
		visitor(r.Child)
	}
}

// BuildLayer wraps the recorded picture in a LayerOpacity node.
func (r *RenderOpacity) BuildLayer(picture *graphics.Layer) *graphics.Layer {
	container := &graphics.Layer{Kind: graphics.LayerOpacity, Opacity: r.Opacity}
	container.AppendChild(picture)
	return container
}

// RenderClipRect clips a single child to this node's own bounds (spec.md
// §3's RenderClip). Unlike RenderTransform/RenderOpacity it doesn't always
// need its own compositing layer: only a child that itself needs one forces
// FlushCompositingBits to mark this node too.
type RenderClipRect struct {
	RenderBoxBase
	Child RenderObject
}

// NewRenderClipRect returns a RenderClipRect wrapping child.
func NewRenderClipRect(child RenderObject) *RenderClipRect {
	c := &RenderClipRect{Child: child}
	c.SetSelf(c)
	attachChild(c, child)
	return c
}

func (r *RenderClipRect) PerformLayout() {
	if r.Child == nil {
		r.SetSize(geom.Size{})
		return
	}
	r.Child.Layout(r.Constraints(), true)
	r.SetSize(r.Child.Size())
}

func (r *RenderClipRect) Paint(ctx *PaintContext) {
	if r.Child == nil {
		return
	}
	size := r.Size()
	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(geom.RectFromLTWH(0, 0, size.Width, size.Height))
	r.Child.Paint(ctx)
	ctx.Canvas.Restore()
}

// HitTest returns a miss outright once position falls outside this node's
// own bounds, since nothing painted beyond the clip can be tapped.
func (r *RenderClipRect) HitTest(position geom.Offset, result *HitTestResult) bool {
	size := r.Size()
	if position.X < 0 || position.Y < 0 || position.X > size.Width || position.Y > size.Height {
		return false
	}
	if r.Child == nil {
		return false
	}
	return r.Child.HitTest(position, result)
}

func (r *RenderClipRect) IsRepaintBoundary() bool      { return true }
func (r *RenderClipRect) AlwaysNeedsCompositing() bool { return false }

func (r *RenderClipRect) VisitChildren(visitor func(RenderObject)) {
	if r.Child != nil {
		visitor(r.Child)
	}
}

// BuildLayer wraps the recorded picture in a LayerClipRect node.
func (r *RenderClipRect) BuildLayer(picture *graphics.Layer) *graphics.Layer {
	size := r.Size()
	container := &graphics.Layer{Kind: graphics.LayerClipRect, ClipRect: geom.RectFromLTWH(0, 0, size.Width, size.Height)}
	container.AppendChild(picture)
	return container
}

// RenderPointerRegion wraps a single child with an explicit HitTestBehavior
// and an optional pointer handler (spec.md §4.5), the vehicle that actually
// exercises HitTestBehavior's three variants: Opaque and Translucent both
// claim the position once it's within bounds (Translucent additionally lets
// hit testing continue past this node to whatever is painted behind it,
// tracked by returning false even though it recorded an entry);
// DeferToChild only claims the position when the child itself already did.
type RenderPointerRegion struct {
	RenderBoxBase
	Behavior  HitTestBehavior
	Child     RenderObject
	OnPointer func(gestures.PointerEvent) gestures.EventPropagation
}

// NewRenderPointerRegion returns a RenderPointerRegion wrapping child.
func NewRenderPointerRegion(behavior HitTestBehavior, child RenderObject) *RenderPointerRegion {
	p := &RenderPointerRegion{Behavior: behavior, Child: child}
	p.SetSelf(p)
	attachChild(p, child)
	return p
}

func (r *RenderPointerRegion) PerformLayout() {
	if r.Child == nil {
		r.SetSize(geom.Size{})
		return
	}
	r.Child.Layout(r.Constraints(), true)
	r.SetSize(r.Child.Size())
}

func (r *RenderPointerRegion) Paint(ctx *PaintContext) {
	if r.Child != nil {
		r.Child.Paint(ctx)
	}
}

func (r *RenderPointerRegion) HitTest(position geom.Offset, result *HitTestResult) bool {
	size := r.Size()
	inBounds := position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
	if !inBounds {
		return false
	}
	hitChild := false
	if r.Child != nil {
		hitChild = r.Child.HitTest(position, result)
	}
	switch r.Behavior {
	case HitTestBehaviorDeferToChild:
		if hitChild {
			result.Add(r, position)
		}
		return hitChild
	case HitTestBehaviorTranslucent:
		result.Add(r, position)
		return hitChild
	default: // HitTestBehaviorOpaque
		result.Add(r, position)
		return true
	}
}

// HandlePointer implements PointerHandler, delegating to OnPointer if set.
func (r *RenderPointerRegion) HandlePointer(event gestures.PointerEvent) gestures.EventPropagation {
	if r.OnPointer == nil {
		return gestures.Continue
	}
	return r.OnPointer(event)
}

func (r *RenderPointerRegion) VisitChildren(visitor func(RenderObject)) {
	if r.Child != nil {
		visitor(r.Child)
	}
}
