package layout

import (
	"slices"

	"github.com/flui-dev/flui/pkg/graphics"
)

// PipelineOwner tracks render objects that need layout, paint, or semantics
// updates and flushes each in depth order once per frame (spec.md §4.3):
// layout ascending (shallowest first, so a parent's constraints are settled
// before its children run), then compositing bits, then paint descending
// (deepest first, so cached child layers exist before an ancestor composites
// them), then semantics.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool
	dirtyPaint     []RenderObject
	dirtyPaintSet  map[RenderObject]bool
	dirtySemantics []RenderObject
	dirtySemSet    map[RenderObject]bool

	needsLayout    bool
	needsPaint     bool
	needsSemantics bool

	root RenderObject
}

// NewPipelineOwner returns an empty pipeline owner.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{}
}

// SetRoot designates the render tree root the pipeline lays out and
// composites from.
func (p *PipelineOwner) SetRoot(root RenderObject) {
	p.root = root
}

// Root returns the render tree root.
func (p *PipelineOwner) Root() RenderObject {
	return p.root
}

// ScheduleLayout marks a render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[RenderObject]bool)
	}
	if p.dirtyPaintSet[object] {
		return
	}
	p.dirtyPaintSet[object] = true
	p.dirtyPaint = append(p.dirtyPaint, object)
	p.needsPaint = true
}

// ScheduleSemantics marks a render object as needing a semantics update.
func (p *PipelineOwner) ScheduleSemantics(object RenderObject) {
	if p.dirtySemSet == nil {
		p.dirtySemSet = make(map[RenderObject]bool)
	}
	if p.dirtySemSet[object] {
		return
	}
	p.dirtySemSet[object] = true
	p.dirtySemantics = append(p.dirtySemantics, object)
	p.needsSemantics = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool { return p.needsLayout }

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool { return p.needsPaint }

// NeedsSemantics reports if any render objects need a semantics update.
func (p *PipelineOwner) NeedsSemantics() bool { return p.needsSemantics }

// FlushLayout runs PerformLayout on every dirty boundary, shallowest first.
// A boundary's own Layout call clears needsLayout on itself and every
// descendant it lays out, so later (deeper) entries in the sorted list are
// frequently already clean by the time they're reached.
func (p *PipelineOwner) FlushLayout() {
	if !p.needsLayout {
		return
	}
	for len(p.dirtyLayout) > 0 {
		dirty := p.dirtyLayout
		p.dirtyLayout = nil
		clear(p.dirtyLayoutSet)

		slices.SortFunc(dirty, func(a, b RenderObject) int {
			return a.Depth() - b.Depth()
		})

		for _, object := range dirty {
			relayouter, ok := object.(interface{ PerformRelayout() })
			if !ok {
				continue
			}
			relayouter.PerformRelayout()
		}
	}
	p.needsLayout = false
}

// compositingNode is implemented by render objects that cache the
// compositing bit FlushCompositingBits computes.
type compositingNode interface {
	RenderObject
	NeedsCompositing() bool
	SetNeedsCompositing(bool)
}

// FlushCompositingBits recomputes each render object's needsCompositing flag
// depth-ascending (spec.md §4.3): needs_compositing := always_needs_compositing
// || any_child.needs_compositing. A child with AlwaysNeedsCompositing (e.g. a
// RenderOpacity or RenderTransform) forces every ancestor up to the root to
// composite too; SetNeedsCompositing marks the node's repaint boundary for
// repaint whenever the bit actually flips, so FlushPaint picks up nodes
// whose compositing requirement changed even though their paint content
// didn't.
func (p *PipelineOwner) FlushCompositingBits() {
	if p.root == nil {
		return
	}
	computeNeedsCompositing(p.root)
}

// computeNeedsCompositing recurses to the leaves first (post-order), so a
// parent's bit is computed only once every child's bit is already known,
// matching the bottom-up direction spec.md §4.3 calls for.
func computeNeedsCompositing(object RenderObject) bool {
	needs := object.AlwaysNeedsCompositing()
	if visitor, ok := object.(ChildVisitor); ok {
		visitor.VisitChildren(func(child RenderObject) {
			if computeNeedsCompositing(child) {
				needs = true
			}
		})
	}
	if node, ok := object.(compositingNode); ok {
		node.SetNeedsCompositing(needs)
	}
	return needs
}

// paintBoundary is implemented by repaint boundaries: their cached layer is
// re-recorded whenever they're dirty, and replayed by an ancestor's
// PaintChildWithLayer otherwise.
type paintBoundary interface {
	RenderObject
	NeedsPaint() bool
	ClearNeedsPaint()
	SetLayer(layer *graphics.Layer)
}

// layerBuilder is implemented by render objects whose repaint-boundary cache
// should wrap the recorded picture in a structural layer (Transform,
// ClipRect, Opacity, ...) instead of caching the bare picture (spec.md
// §4.3/§4.4).
type layerBuilder interface {
	BuildLayer(picture *graphics.Layer) *graphics.Layer
}

// FlushPaint repaints every dirty repaint boundary, deepest first, so a
// parent boundary compositing its children's cached layers always finds
// them already repainted.
func (p *PipelineOwner) FlushPaint() {
	if !p.needsPaint {
		return
	}
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	clear(p.dirtyPaintSet)

	sorted := SortedByDepthFunc(dirty, func(o RenderObject) int { return o.Depth() }, false)

	for _, object := range sorted {
		boundary, ok := object.(paintBoundary)
		if !ok || !boundary.NeedsPaint() {
			continue
		}
		recorder := graphics.PictureRecorder{}
		canvas := recorder.BeginRecording(object.Size())
		object.Paint(&PaintContext{Canvas: canvas})
		picture := graphics.NewPictureLayer(recorder.EndRecording())
		var layer *graphics.Layer
		if builder, ok := object.(layerBuilder); ok {
			layer = builder.BuildLayer(picture)
		} else {
			layer = picture
		}
		boundary.SetLayer(layer)
		boundary.ClearNeedsPaint()
	}
	p.needsPaint = false
}

// FlushSemantics clears the pending semantics dirty set. It does not build
// or update a semantics tree.
func (p *PipelineOwner) FlushSemantics() {
	if !p.needsSemantics {
		return
	}
	p.dirtySemantics = nil
	clear(p.dirtySemSet)
	p.needsSemantics = false
}

// Flush runs a complete frame's worth of pipeline phases in spec order:
// layout, compositing bits, paint, semantics.
func (p *PipelineOwner) Flush(rootConstraints Constraints) {
	if p.root != nil && p.needsLayout {
		p.root.Layout(rootConstraints, false)
	}
	p.FlushLayout()
	p.FlushCompositingBits()
	p.FlushPaint()
	p.FlushSemantics()
}

// SortedByDepthFunc is a small local convenience wrapper so pipeline.go
// does not need to import pkg/tree just for one helper; the same
// ascending/descending depth sort idiom as pkg/tree.SortedByDepth.
func SortedByDepthFunc[T any](items []T, depth func(T) int, ascending bool) []T {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b T) int {
		if ascending {
			return depth(a) - depth(b)
		}
		return depth(b) - depth(a)
	})
	return sorted
}
