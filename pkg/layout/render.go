package layout

import (
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/graphics"
	"github.com/flui-dev/flui/pkg/semantics"
)

// RenderObject handles layout, painting, and hit testing (spec.md §4.2-§4.5).
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() geom.Size
	Paint(ctx *PaintContext)
	HitTest(position geom.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	MarkNeedsSemanticsUpdate()
	SetOwner(owner *PipelineOwner)
	IsRepaintBoundary() bool
	AlwaysNeedsCompositing() bool
	Depth() int
}

// SemanticsDescriber is implemented by render objects that provide semantic
// information.
type SemanticsDescriber interface {
	DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// ScrollOffsetProvider is implemented by scrollable render objects so the
// semantics and hit-test phases can adjust child positions for scroll offset.
type ScrollOffsetProvider interface {
	SemanticScrollOffset() geom.Offset
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset geom.Offset
}

// RenderBoxBase provides base behavior for render boxes: boundary tracking,
// dirty propagation, and the cached paint layer. Concrete render objects
// embed this and implement PerformLayout/Paint/HitTest themselves.
type RenderBoxBase struct {
	size                 geom.Size
	parentData           any
	owner                *PipelineOwner
	self                 RenderObject
	parent               RenderObject
	depth                int
	relayoutBoundary     RenderObject
	needsLayout          bool
	constraints          Constraints
	repaintBoundary      RenderObject
	needsPaint           bool
	layer                *graphics.Layer
	needsCompositing     bool
	semanticsBoundary    RenderObject
	needsSemanticsUpdate bool
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() geom.Size { return r.size }

// SetSize updates the render box size.
func (r *RenderBoxBase) SetSize(size geom.Size) { r.size = size }

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any { return r.parentData }

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) { r.parentData = data }

// AlwaysNeedsCompositing reports whether this node forces a containing
// layer regardless of IsRepaintBoundary. Override in render objects that
// always need their own compositing layer (e.g. ones that set an opacity or
// clip independent of paint content). The base default is false.
func (r *RenderBoxBase) AlwaysNeedsCompositing() bool { return false }

// MarkNeedsLayout marks this render box as needing layout.
//
// Follows the relayout boundary pattern: walk up the tree marking each node
// until reaching a relayout boundary, which then schedules itself. During
// layout, every marked node along the path runs PerformLayout because its
// needsLayout flag is true, so layout correctly propagates from the
// boundary back down to the node that changed.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true

	if r.owner == nil || r.self == nil {
		return
	}

	if r.relayoutBoundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}

	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}

	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint marks this render box as needing paint.
//
// Follows the repaint boundary pattern: walk up until reaching a repaint
// boundary, which schedules itself. Unlike MarkNeedsLayout this does not
// early-return when needsPaint is already true, because SetSelf pre-sets
// needsPaint without scheduling and SchedulePaint already dedupes.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.layer = nil

	if r.owner == nil || r.self == nil {
		r.needsPaint = true
		return
	}

	if r.repaintBoundary == r.self {
		r.needsPaint = true
		r.owner.SchedulePaint(r.self)
		return
	}

	if r.parent != nil {
		r.needsPaint = true
		r.parent.MarkNeedsPaint()
		return
	}

	r.needsPaint = true
	r.owner.SchedulePaint(r.self)
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) { r.owner = owner }

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
	r.needsSemanticsUpdate = true
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject { return r.parent }

// SetParent sets the parent render object and computes depth. Clears
// relayoutBoundary and constraints to avoid stale references when the
// object is reparented to a different subtree.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else {
		r.depth = parent.Depth() + 1
	}
	r.relayoutBoundary = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.repaintBoundary = nil
	r.needsPaint = true
	r.layer = nil
	r.semanticsBoundary = nil
	r.needsSemanticsUpdate = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int { return r.depth }

// RelayoutBoundary returns the cached nearest relayout boundary.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject { return r.relayoutBoundary }

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool { return r.needsLayout }

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints { return r.constraints }

// IsRepaintBoundary returns whether this render object repaints separately.
// Override in render objects that should isolate their paint.
func (r *RenderBoxBase) IsRepaintBoundary() bool { return false }

// RepaintBoundary returns the cached nearest repaint boundary.
func (r *RenderBoxBase) RepaintBoundary() RenderObject { return r.repaintBoundary }

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool { return r.needsPaint }

// Layer returns the cached layer for repaint boundaries.
func (r *RenderBoxBase) Layer() *graphics.Layer { return r.layer }

// SetLayer stores the cached layer.
func (r *RenderBoxBase) SetLayer(layer *graphics.Layer) { r.layer = layer }

// NeedsCompositing reports the cached compositing bit computed by
// PipelineOwner.FlushCompositingBits (spec.md §4.3): true if this node
// always needs its own layer, or any descendant does.
func (r *RenderBoxBase) NeedsCompositing() bool { return r.needsCompositing }

// SetNeedsCompositing updates the cached compositing bit, marking the
// nearest repaint boundary dirty if the value actually changed so it
// recomposites with (or without) the layer this node now requires.
func (r *RenderBoxBase) SetNeedsCompositing(value bool) {
	if r.needsCompositing == value {
		return
	}
	r.needsCompositing = value
	if r.self != nil {
		r.self.MarkNeedsPaint()
	}
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() { r.needsPaint = false }

// SemanticsBoundary returns the cached nearest semantics boundary.
func (r *RenderBoxBase) SemanticsBoundary() RenderObject { return r.semanticsBoundary }

// NeedsSemanticsUpdate returns true if this render box needs a semantics update.
func (r *RenderBoxBase) NeedsSemanticsUpdate() bool { return r.needsSemanticsUpdate }

// ClearNeedsSemanticsUpdate marks this render object's semantics as updated.
func (r *RenderBoxBase) ClearNeedsSemanticsUpdate() { r.needsSemanticsUpdate = false }

// Layout handles boundary determination and delegates to PerformLayout.
//
// A node becomes a relayout boundary when it receives tight constraints, is
// the root, or its parent doesn't use its size (spec.md §4.2). Boundaries
// contain layout changes: when a descendant needs layout, the walk up stops
// at the boundary, so unaffected ancestors never re-run layout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	shouldBeBoundary := constraints.IsTight() || r.parent == nil || !parentUsesSize

	if shouldBeBoundary {
		r.relayoutBoundary = r.self
	} else if r.parent != nil {
		if getter, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
			r.relayoutBoundary = getter.RelayoutBoundary()
		}
	}

	if r.self != nil && (r.self.IsRepaintBoundary() || r.self.AlwaysNeedsCompositing()) {
		r.repaintBoundary = r.self
	} else if r.parent != nil {
		if getter, ok := r.parent.(interface{ RepaintBoundary() RenderObject }); ok {
			r.repaintBoundary = getter.RepaintBoundary()
		}
	}

	// Semantics boundary is computed only during Layout; if semantic
	// properties change without triggering layout, MarkNeedsSemanticsUpdate
	// uses stale boundary info. FlushSemantics reads no boundary info (it
	// only clears the dirty set), so nothing consumes the stale value.
	if r.self != nil {
		isBoundary := false
		if describer, ok := r.self.(SemanticsDescriber); ok {
			var config semantics.SemanticsConfiguration
			contributes := describer.DescribeSemanticsConfiguration(&config)
			isBoundary = config.IsSemanticBoundary || config.IsMergingSemanticsOfDescendants ||
				(contributes && !config.IsEmpty())
		}
		if isBoundary {
			r.semanticsBoundary = r.self
		} else if r.parent != nil {
			if getter, ok := r.parent.(interface{ SemanticsBoundary() RenderObject }); ok {
				r.semanticsBoundary = getter.SemanticsBoundary()
			}
		}
	}

	if !r.needsLayout && r.constraints == constraints {
		return
	}

	r.MarkNeedsSemanticsUpdate()

	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// PerformRelayout re-runs PerformLayout for a node that is already its own
// relayout boundary, using its previously received constraints. Used by
// PipelineOwner.FlushLayout to re-lay-out dirty boundaries directly instead
// of renegotiating boundary status through the parent-facing Layout entry
// point (boundary status was already pinned the first time this node was
// laid out from its parent).
func (r *RenderBoxBase) PerformRelayout() {
	if !r.needsLayout {
		return
	}
	r.MarkNeedsSemanticsUpdate()
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// MarkNeedsSemanticsUpdate marks this render box as needing a semantics
// update, walking up to the nearest semantics boundary the same way
// MarkNeedsLayout walks to a relayout boundary.
func (r *RenderBoxBase) MarkNeedsSemanticsUpdate() {
	if r.owner == nil || r.self == nil {
		r.needsSemanticsUpdate = true
		return
	}

	if r.semanticsBoundary == r.self {
		r.needsSemanticsUpdate = true
		r.owner.ScheduleSemantics(r.self)
		return
	}

	if r.parent != nil {
		r.needsSemanticsUpdate = true
		r.parent.MarkNeedsSemanticsUpdate()
		return
	}

	r.needsSemanticsUpdate = true
	r.owner.ScheduleSemantics(r.self)
}

// DescribeSemanticsConfiguration is the default implementation reporting no
// semantic content. Override in render objects that provide semantics.
func (r *RenderBoxBase) DescribeSemanticsConfiguration(config *semantics.SemanticsConfiguration) bool {
	return false
}
