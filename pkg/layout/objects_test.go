package layout

import (
	"math"
	"testing"

	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/graphics"
)

type leafBox struct {
	RenderBoxBase
	size geom.Size
}

func newLeafBox(size geom.Size) *leafBox {
	l := &leafBox{size: size}
	l.SetSelf(l)
	return l
}

func (l *leafBox) PerformLayout()                          { l.SetSize(l.size) }
func (l *leafBox) Paint(ctx *PaintContext)                  {}
func (l *leafBox) HitTest(p geom.Offset, r *HitTestResult) bool {
	if p.X < 0 || p.Y < 0 || p.X > l.size.Width || p.Y > l.size.Height {
		return false
	}
	r.Add(l, p)
	return true
}

// TestRenderTransformHitTestMapsToChildLocalSpace is scenario D: a 100x100
// child wrapped in a 45-degree rotation, hit at the point that rotation
// maps from (70.71,0) in the child's local space. The recorded entry's local
// position should land back at that pre-image, not at the global point.
func TestRenderTransformHitTestMapsToChildLocalSpace(t *testing.T) {
	child := newLeafBox(geom.Size{Width: 100, Height: 100})
	transform := geom.Rotation(math.Pi / 4)
	root := NewRenderTransform(transform, child)
	root.SetSelf(root)
	root.Layout(Tight(geom.Size{Width: 100, Height: 100}), false)

	global := transform.Apply(geom.Offset{X: 70.710678, Y: 0})

	result := &HitTestResult{}
	if !root.HitTest(global, result) {
		t.Fatalf("expected the rotated child to be hit")
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(result.Entries))
	}
	local := result.Entries[0].LocalPosition
	if math.Abs(local.X-70.710678) > 1e-3 || math.Abs(local.Y) > 1e-3 {
		t.Fatalf("expected local position ~(70.7,0), got %+v", local)
	}

	// The frozen transform, inverted, must re-derive the same local position
	// from the global point -- this is what a later Move/Up event relies on.
	inverse, ok := result.Entries[0].Transform.Invert()
	if !ok {
		t.Fatalf("expected the frozen transform to be invertible")
	}
	rederived := inverse.Apply(global)
	if math.Abs(rederived.X-local.X) > 1e-6 || math.Abs(rederived.Y-local.Y) > 1e-6 {
		t.Fatalf("expected re-deriving local position from the frozen transform to match, got %+v vs %+v", rederived, local)
	}
}

// TestRenderTransformHitTestSkipsNonInvertibleTransform covers invariant 10:
// a zero-scale transform has no inverse and must be skipped rather than
// dispatched against a meaningless mapping.
func TestRenderTransformHitTestSkipsNonInvertibleTransform(t *testing.T) {
	child := newLeafBox(geom.Size{Width: 100, Height: 100})
	root := NewRenderTransform(geom.ScaleMatrix(0, 0), child)
	root.SetSelf(root)
	root.Layout(Tight(geom.Size{Width: 100, Height: 100}), false)

	result := &HitTestResult{}
	if root.HitTest(geom.Offset{X: 0, Y: 0}, result) {
		t.Fatalf("expected a non-invertible transform to miss rather than dispatch")
	}
	if len(result.Entries) != 0 {
		t.Fatalf("expected no entries recorded through a non-invertible transform, got %d", len(result.Entries))
	}
}

func TestRenderClipRectHitTestMissesOutsideBounds(t *testing.T) {
	child := newLeafBox(geom.Size{Width: 50, Height: 50})
	root := NewRenderClipRect(child)
	root.SetSelf(root)
	root.Layout(Tight(geom.Size{Width: 50, Height: 50}), false)

	result := &HitTestResult{}
	if root.HitTest(geom.Offset{X: 75, Y: 75}, result) {
		t.Fatalf("expected a position outside the clip bounds to miss")
	}

	result = &HitTestResult{}
	if !root.HitTest(geom.Offset{X: 10, Y: 10}, result) {
		t.Fatalf("expected a position inside the clip bounds to hit the child")
	}
}

func TestRenderOpacityHitTestIgnoresOpacity(t *testing.T) {
	child := newLeafBox(geom.Size{Width: 100, Height: 100})
	root := NewRenderOpacity(0, child)
	root.SetSelf(root)
	root.Layout(Tight(geom.Size{Width: 100, Height: 100}), false)

	result := &HitTestResult{}
	if !root.HitTest(geom.Offset{X: 10, Y: 10}, result) {
		t.Fatalf("expected a fully transparent RenderOpacity to still be hit-testable")
	}
}

func TestRenderPointerRegionOpaqueClaimsAndStops(t *testing.T) {
	child := newLeafBox(geom.Size{Width: 100, Height: 100})
	region := NewRenderPointerRegion(HitTestBehaviorOpaque, child)
	region.SetSelf(region)
	region.Layout(Tight(geom.Size{Width: 100, Height: 100}), false)

	result := &HitTestResult{}
	hit := region.HitTest(geom.Offset{X: 10, Y: 10}, result)
	if !hit {
		t.Fatalf("expected Opaque to claim the position")
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected both the child and the region recorded, got %d", len(result.Entries))
	}
}

func TestRenderPointerRegionDeferToChildOnlyClaimsOnChildHit(t *testing.T) {
	region := NewRenderPointerRegion(HitTestBehaviorDeferToChild, nil)
	region.SetSelf(region)
	region.Layout(Tight(geom.Size{Width: 100, Height: 100}), false)

	result := &HitTestResult{}
	if region.HitTest(geom.Offset{X: 10, Y: 10}, result) {
		t.Fatalf("expected DeferToChild with no child hit to miss")
	}
	if len(result.Entries) != 0 {
		t.Fatalf("expected no entries recorded, got %d", len(result.Entries))
	}
}

func TestRenderPointerRegionHandlePointerDelegatesToCallback(t *testing.T) {
	var got gestures.PointerEvent
	region := NewRenderPointerRegion(HitTestBehaviorOpaque, nil)
	region.SetSelf(region)
	region.OnPointer = func(event gestures.PointerEvent) gestures.EventPropagation {
		got = event
		return gestures.Stop
	}

	propagation := region.HandlePointer(gestures.PointerEvent{PointerID: 7})
	if propagation != gestures.Stop {
		t.Fatalf("expected the callback's EventPropagation to be returned")
	}
	if got.PointerID != 7 {
		t.Fatalf("expected the callback to receive the dispatched event")
	}
}

// TestFlushCompositingBitsPropagatesFromAlwaysCompositingChild exercises
// PipelineOwner.FlushCompositingBits' depth-ascending OR: a RenderClipRect
// (AlwaysNeedsCompositing == false) wrapping a RenderOpacity child (always
// true) must itself end up needing compositing.
func TestFlushCompositingBitsPropagatesFromAlwaysCompositingChild(t *testing.T) {
	owner := NewPipelineOwner()

	leaf := newLeafBox(geom.Size{Width: 50, Height: 50})
	opacity := NewRenderOpacity(0.5, leaf)
	clip := NewRenderClipRect(opacity)
	clip.SetOwner(owner)
	owner.SetRoot(clip)

	clip.Layout(Tight(geom.Size{Width: 50, Height: 50}), false)

	owner.FlushCompositingBits()

	if !opacity.NeedsCompositing() {
		t.Fatalf("expected the opacity node to always need compositing")
	}
	if !clip.NeedsCompositing() {
		t.Fatalf("expected the clip node to need compositing because its child does")
	}
}

func TestFlushCompositingBitsFalseWithNoCompositingDescendant(t *testing.T) {
	owner := NewPipelineOwner()

	leaf := newLeafBox(geom.Size{Width: 50, Height: 50})
	clip := NewRenderClipRect(leaf)
	clip.SetOwner(owner)
	owner.SetRoot(clip)
	clip.Layout(Tight(geom.Size{Width: 50, Height: 50}), false)

	owner.FlushCompositingBits()

	if clip.NeedsCompositing() {
		t.Fatalf("expected the clip node to not need compositing with no compositing descendant")
	}
}

// TestRenderTransformBuildLayerWrapsPicture exercises the layerBuilder
// extension point FlushPaint relies on.
func TestRenderTransformBuildLayerWrapsPicture(t *testing.T) {
	transform := geom.Translation(5, 5)
	child := newLeafBox(geom.Size{Width: 10, Height: 10})
	root := NewRenderTransform(transform, child)

	picture := graphics.NewPictureLayer(nil)
	built := root.BuildLayer(picture)

	if built.Kind != graphics.LayerTransform {
		t.Fatalf("expected a LayerTransform wrapper, got %v", built.Kind)
	}
	if built.Transform != transform {
		t.Fatalf("expected the wrapper to carry the render object's transform")
	}
	if len(built.Children) != 1 || built.Children[0] != picture {
		t.Fatalf("expected the picture layer to be appended as the wrapper's child")
	}
}
