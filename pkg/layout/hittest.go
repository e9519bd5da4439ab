package layout

import "github.com/flui-dev/flui/pkg/geom"

// HitTestBehavior controls how a render object participates in hit testing
// relative to its children (spec.md §4.5).
type HitTestBehavior int

const (
	// HitTestBehaviorDeferToChild only reports a hit at this node if a child
	// already claimed the position; it never adds itself on its own account.
	HitTestBehaviorDeferToChild HitTestBehavior = iota
	// HitTestBehaviorOpaque claims the position once its bounds contain it,
	// regardless of whether a child also claimed it, and stops the hit test
	// from reaching anything painted behind this node.
	HitTestBehaviorOpaque
	// HitTestBehaviorTranslucent claims the position like Opaque, but still
	// lets the hit test continue past it to siblings/ancestors painted
	// behind it.
	HitTestBehaviorTranslucent
)

// HitTestEntry records one render object along a hit test's path: the
// target, the pointer position already mapped into that target's local
// coordinate space, the transform frozen at hit-test time that produced that
// mapping, and the target's pointer handler, if it has one (spec.md §3,
// §4.5). Entries are ordered leaf-first (front-to-back, deepest first).
type HitTestEntry struct {
	Target        RenderObject
	LocalPosition geom.Offset
	Transform     geom.Matrix
	Handler       PointerHandler
}

// HitTestResult accumulates HitTestEntry values during a hit test walk. It
// tracks the transform composed by ancestor Transform-kind nodes so each Add
// call can freeze the transform that mapped the global position into the
// local position being recorded; a later event at a different global
// position can invert that same frozen transform to re-map itself into the
// target's local space without re-running the hit test (spec.md §4.5,
// scenario D).
type HitTestResult struct {
	Entries []HitTestEntry

	transformStack []geom.Matrix
	transform      geom.Matrix
	hasTransform   bool
}

func (h *HitTestResult) currentTransform() geom.Matrix {
	if !h.hasTransform {
		return geom.Identity()
	}
	return h.transform
}

// PushTransform composes m, the transform a child contributes mapping its
// own local space into its parent's, onto the result's accumulated
// local-to-global transform before descending into that child (e.g.
// RenderTransform.HitTest). Because a point in the child's space is first
// mapped by m and only then by everything already accumulated above it, m
// goes on the left of Concat. Pop with PopTransform once the descent
// returns.
func (h *HitTestResult) PushTransform(m geom.Matrix) {
	h.transformStack = append(h.transformStack, h.currentTransform())
	h.transform = m.Concat(h.currentTransform())
	h.hasTransform = true
}

// PopTransform restores the transform in effect before the matching
// PushTransform.
func (h *HitTestResult) PopTransform() {
	if len(h.transformStack) == 0 {
		return
	}
	h.transform = h.transformStack[len(h.transformStack)-1]
	h.transformStack = h.transformStack[:len(h.transformStack)-1]
}

// Transform returns the transform currently in effect (identity if nothing
// has been pushed).
func (h *HitTestResult) Transform() geom.Matrix {
	return h.currentTransform()
}

// Add records target as hit at localPosition, freezing the transform
// currently in effect and capturing target's PointerHandler implementation,
// if it has one.
func (h *HitTestResult) Add(target RenderObject, localPosition geom.Offset) {
	var handler PointerHandler
	if ph, ok := target.(PointerHandler); ok {
		handler = ph
	}
	h.Entries = append(h.Entries, HitTestEntry{
		Target:        target,
		LocalPosition: localPosition,
		Transform:     h.currentTransform(),
		Handler:       handler,
	})
}
