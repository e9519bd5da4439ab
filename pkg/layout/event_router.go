package layout

import (
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/platform"
)

// EventRouter hit-tests a render tree and dispatches pointer and scroll
// events along the resulting path, remapping each event into every
// target's own local coordinate space from the transform that was frozen
// when that target was hit (spec.md §4.5). A single hit test's entries can
// be reused across an entire pointer's down/move/up lifecycle: each later
// event re-maps itself through the same frozen HitTestEntry.Transform
// instead of re-walking the tree. EventRouter holds no tree reference of
// its own; callers (e.g. engine.Engine, which owns the root under its own
// lock) pass the root to hit-test explicitly on every call.
type EventRouter struct{}

// NewEventRouter returns an EventRouter.
func NewEventRouter() *EventRouter {
	return &EventRouter{}
}

// HitTest runs a hit test against root at position (logical coordinates)
// and returns the resulting entries, leaf-first.
func (r *EventRouter) HitTest(root RenderObject, position geom.Offset) []HitTestEntry {
	if root == nil {
		return nil
	}
	result := &HitTestResult{}
	root.HitTest(position, result)
	return result.Entries
}

// Dispatch re-maps globalPosition/globalDelta into each entry's local
// space via its frozen transform and calls its handler in order, stopping
// as soon as one returns gestures.Stop (spec.md §4.5). Entries whose
// transform has no inverse are skipped rather than dispatched against a
// meaningless mapping (spec.md §8 invariant 10).
func (r *EventRouter) Dispatch(entries []HitTestEntry, pointerID int64, phase gestures.PointerPhase, kind gestures.PointerKind, buttons int, timestamp float64, globalPosition, globalDelta geom.Offset) {
	for _, entry := range entries {
		if entry.Handler == nil {
			continue
		}
		inverse, invertible := entry.Transform.Invert()
		if !invertible {
			continue
		}
		event := gestures.PointerEvent{
			PointerID: pointerID,
			Position:  inverse.Apply(globalPosition),
			Delta:     inverse.ApplyVector(globalDelta),
			Phase:     phase,
			Kind:      kind,
			Buttons:   buttons,
			Timestamp: timestamp,
		}
		if entry.Handler.HandlePointer(event) == gestures.Stop {
			return
		}
	}
}

// ScrollHandler is implemented by render objects that want routed scroll
// events (spec.md §4.5's wheel/trackpad bubbling), the scroll counterpart
// of PointerHandler.
type ScrollHandler interface {
	HandleScroll(event platform.ScrollEvent) gestures.EventPropagation
}

// DispatchScroll hit-tests scroll.Position against the current root and
// routes it to every ScrollHandler along the path, deepest first, stopping
// at the first one that returns gestures.Stop. scroll.Position and its
// delta are both re-mapped into each target's local space the same way
// Dispatch remaps a pointer event. Before this, platform.ScrollEvent had no
// route from a platform window into the render tree at all.
func (r *EventRouter) DispatchScroll(root RenderObject, scroll platform.ScrollEvent) {
	if root == nil {
		return
	}
	result := &HitTestResult{}
	root.HitTest(scroll.Position, result)

	for _, entry := range result.Entries {
		handler, ok := entry.Target.(ScrollHandler)
		if !ok {
			continue
		}
		inverse, invertible := entry.Transform.Invert()
		if !invertible {
			continue
		}
		local := scroll
		local.Position = entry.LocalPosition
		delta := inverse.ApplyVector(geom.Offset{X: scroll.DeltaX, Y: scroll.DeltaY})
		local.DeltaX, local.DeltaY = delta.X, delta.Y
		if handler.HandleScroll(local) == gestures.Stop {
			return
		}
	}
}
