package engine

import (
	"testing"

	"github.com/flui-dev/flui/pkg/focus"
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/graphics"
	"github.com/flui-dev/flui/pkg/layout"
	"github.com/flui-dev/flui/pkg/scheduler"
)

type testRenderObject struct {
	layout.RenderBoxBase
	layouts       int
	paints        int
	hitTestResult bool
	pointerEvents []gestures.PointerEvent
}

func (r *testRenderObject) PerformLayout() {
	r.layouts++
	r.SetSize(geom.Size{Width: 100, Height: 100})
}

func (r *testRenderObject) Paint(ctx *layout.PaintContext) {
	r.paints++
}

func (r *testRenderObject) HitTest(position geom.Offset, result *layout.HitTestResult) bool {
	if r.hitTestResult {
		result.Add(r, position)
	}
	return r.hitTestResult
}

func (r *testRenderObject) IsRepaintBoundary() bool { return true }

func (r *testRenderObject) HandlePointer(event gestures.PointerEvent) gestures.EventPropagation {
	r.pointerEvents = append(r.pointerEvents, event)
	return gestures.Continue
}

func newTestRoot(hits bool) *testRenderObject {
	root := &testRenderObject{hitTestResult: hits}
	root.SetSelf(root)
	return root
}

func TestSetRootRequestsFrame(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	if !e.NeedsFrame() {
		t.Fatalf("expected an empty engine to need a frame")
	}
	e.SetRoot(newTestRoot(false))
	if !e.scheduler.NeedsFrame() {
		t.Fatalf("expected SetRoot to request a frame")
	}
}

func TestRunFrameLaysOutAndPaintsRoot(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	root := newTestRoot(false)
	e.SetRoot(root)

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(geom.Size{Width: 100, Height: 100})

	if err := e.RunFrame(canvas, geom.Size{Width: 100, Height: 100}); err != nil {
		t.Fatalf("RunFrame returned an error: %v", err)
	}

	if root.layouts != 1 {
		t.Fatalf("expected root to be laid out once, got %d", root.layouts)
	}
	if root.paints != 1 {
		t.Fatalf("expected root to be painted once, got %d", root.paints)
	}
	if len(e.Samples()) != 1 {
		t.Fatalf("expected one recorded frame sample, got %d", len(e.Samples()))
	}
}

func TestHandlePointerDispatchesThroughHitPath(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	root := newTestRoot(true)
	e.SetRoot(root)

	e.HandlePointer(PointerEvent{PointerID: 1, X: 10, Y: 20, Phase: PointerPhaseDown})

	if len(root.pointerEvents) != 1 {
		t.Fatalf("expected the hit render object to receive the pointer event, got %d events", len(root.pointerEvents))
	}
	got := root.pointerEvents[0]
	if got.Phase != gestures.PointerPhaseDown {
		t.Fatalf("expected a Down phase event, got %v", got.Phase)
	}
	if got.Position.X != 10 || got.Position.Y != 20 {
		t.Fatalf("expected position (10,20) at scale 1, got %+v", got.Position)
	}

	e.HandlePointer(PointerEvent{PointerID: 1, X: 15, Y: 20, Phase: PointerPhaseMove})
	if len(root.pointerEvents) != 2 {
		t.Fatalf("expected the move event to route to the same handler, got %d events", len(root.pointerEvents))
	}
	if root.pointerEvents[1].Delta.X != 5 {
		t.Fatalf("expected a 5px horizontal delta, got %+v", root.pointerEvents[1].Delta)
	}

	e.HandlePointer(PointerEvent{PointerID: 1, X: 15, Y: 20, Phase: PointerPhaseUp})
	e.mu.Lock()
	_, stillTracked := e.pointerEntries[1]
	e.mu.Unlock()
	if stillTracked {
		t.Fatalf("expected pointer hit-test entries to be forgotten after Up")
	}
}

func TestHandlePointerScalesDeviceCoordinates(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	root := newTestRoot(true)
	e.SetRoot(root)
	e.SetDeviceScale(2)

	e.HandlePointer(PointerEvent{PointerID: 1, X: 20, Y: 40, Phase: PointerPhaseDown})

	if len(root.pointerEvents) != 1 {
		t.Fatalf("expected one pointer event, got %d", len(root.pointerEvents))
	}
	if got := root.pointerEvents[0].Position; got.X != 10 || got.Y != 20 {
		t.Fatalf("expected device coordinates to be divided by scale, got %+v", got)
	}
}

func TestHandlePointerIgnoresMissWithNoHandlers(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	root := newTestRoot(false)
	e.SetRoot(root)

	e.HandlePointer(PointerEvent{PointerID: 1, X: 10, Y: 10, Phase: PointerPhaseDown})

	if len(root.pointerEvents) != 0 {
		t.Fatalf("expected no pointer events when the hit test misses, got %d", len(root.pointerEvents))
	}
}

func TestHandleKeyRoutesToFocusedNode(t *testing.T) {
	e := New(scheduler.NewFakeVsync(), 60)
	manager := focus.GetFocusManager()

	handled := false
	node := &focus.FocusNode{
		CanRequestFocus: true,
		OnKeyEvent: func(gestures.KeyEvent) focus.KeyEventResult {
			handled = true
			return focus.KeyEventHandled
		},
	}
	manager.RootScope = &focus.FocusScopeNode{Children: []*focus.FocusNode{node}}
	manager.PrimaryFocus = node

	result := e.HandleKey(gestures.KeyEvent{Phase: gestures.KeyPhaseDown, Logical: "a"})

	if !handled {
		t.Fatalf("expected the focused node's OnKeyEvent to run")
	}
	if result != focus.KeyEventHandled {
		t.Fatalf("expected KeyEventHandled, got %v", result)
	}
}
