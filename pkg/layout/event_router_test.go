package layout

import (
	"testing"

	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/platform"
)

type stoppingHandlerBox struct {
	RenderBoxBase
	propagation gestures.EventPropagation
	events      []gestures.PointerEvent
}

func newStoppingHandlerBox(propagation gestures.EventPropagation) *stoppingHandlerBox {
	b := &stoppingHandlerBox{propagation: propagation}
	b.SetSelf(b)
	return b
}

func (b *stoppingHandlerBox) PerformLayout()             {}
func (b *stoppingHandlerBox) Paint(ctx *PaintContext)    {}
func (b *stoppingHandlerBox) HitTest(geom.Offset, *HitTestResult) bool { return false }

func (b *stoppingHandlerBox) HandlePointer(event gestures.PointerEvent) gestures.EventPropagation {
	b.events = append(b.events, event)
	return b.propagation
}

func entriesFor(targets ...*stoppingHandlerBox) []HitTestEntry {
	entries := make([]HitTestEntry, len(targets))
	for i, target := range targets {
		entries[i] = HitTestEntry{
			Target:        target,
			LocalPosition: geom.Offset{},
			Transform:     geom.Identity(),
			Handler:       target,
		}
	}
	return entries
}

func TestEventRouterDispatchStopsAtFirstStop(t *testing.T) {
	front := newStoppingHandlerBox(gestures.Stop)
	back := newStoppingHandlerBox(gestures.Continue)

	router := NewEventRouter()
	router.Dispatch(entriesFor(front, back), 1, gestures.PointerPhaseDown, gestures.PointerKindTouch, 0, 0, geom.Offset{X: 5, Y: 5}, geom.Offset{})

	if len(front.events) != 1 {
		t.Fatalf("expected the front handler to receive the event, got %d", len(front.events))
	}
	if len(back.events) != 0 {
		t.Fatalf("expected dispatch to stop before reaching the back handler, got %d events", len(back.events))
	}
}

func TestEventRouterDispatchContinuesPastContinue(t *testing.T) {
	front := newStoppingHandlerBox(gestures.Continue)
	back := newStoppingHandlerBox(gestures.Continue)

	router := NewEventRouter()
	router.Dispatch(entriesFor(front, back), 1, gestures.PointerPhaseDown, gestures.PointerKindTouch, 0, 0, geom.Offset{X: 5, Y: 5}, geom.Offset{})

	if len(front.events) != 1 || len(back.events) != 1 {
		t.Fatalf("expected both handlers to receive the event, got front=%d back=%d", len(front.events), len(back.events))
	}
}

func TestEventRouterDispatchSkipsNonInvertibleTransform(t *testing.T) {
	target := newStoppingHandlerBox(gestures.Continue)
	entries := []HitTestEntry{{
		Target:    target,
		Transform: geom.ScaleMatrix(0, 0),
		Handler:   target,
	}}

	router := NewEventRouter()
	router.Dispatch(entries, 1, gestures.PointerPhaseDown, gestures.PointerKindTouch, 0, 0, geom.Offset{X: 5, Y: 5}, geom.Offset{})

	if len(target.events) != 0 {
		t.Fatalf("expected a non-invertible transform to be skipped, got %d events", len(target.events))
	}
}

type scrollHandlerBox struct {
	RenderBoxBase
	propagation gestures.EventPropagation
	events      []platform.ScrollEvent
}

func newScrollHandlerBox(propagation gestures.EventPropagation) *scrollHandlerBox {
	b := &scrollHandlerBox{propagation: propagation}
	b.SetSelf(b)
	return b
}

func (b *scrollHandlerBox) PerformLayout()          {}
func (b *scrollHandlerBox) Paint(ctx *PaintContext) {}

func (b *scrollHandlerBox) HitTest(position geom.Offset, result *HitTestResult) bool {
	result.Add(b, position)
	return true
}

func (b *scrollHandlerBox) HandleScroll(event platform.ScrollEvent) gestures.EventPropagation {
	b.events = append(b.events, event)
	return b.propagation
}

func TestEventRouterDispatchScrollRoutesToHandler(t *testing.T) {
	target := newScrollHandlerBox(gestures.Continue)

	router := NewEventRouter()
	router.DispatchScroll(target, platform.ScrollEvent{
		DeltaY:   -10,
		Position: geom.Offset{X: 5, Y: 5},
	})

	if len(target.events) != 1 {
		t.Fatalf("expected the scroll to be routed to the hit target, got %d events", len(target.events))
	}
	if target.events[0].DeltaY != -10 {
		t.Fatalf("expected the delta to survive an identity transform, got %+v", target.events[0])
	}
}
