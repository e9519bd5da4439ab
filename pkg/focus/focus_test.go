package focus

import (
	"testing"

	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
)

type fixedRect geom.Rect

func (r fixedRect) FocusRect() geom.Rect { return geom.Rect(r) }

func TestMoveFocusWrapsAndSkipsUnfocusable(t *testing.T) {
	manager := GetFocusManager()
	a := &FocusNode{CanRequestFocus: true}
	b := &FocusNode{CanRequestFocus: false}
	c := &FocusNode{CanRequestFocus: true}
	manager.RootScope.Children = []*FocusNode{a, b, c}
	manager.PrimaryFocus = nil

	if !manager.MoveFocus(1) {
		t.Fatalf("expected MoveFocus to succeed")
	}
	if manager.PrimaryFocus != a {
		t.Fatalf("expected a to receive focus first")
	}

	if !manager.MoveFocus(1) {
		t.Fatalf("expected MoveFocus to succeed, skipping unfocusable b")
	}
	if manager.PrimaryFocus != c {
		t.Fatalf("expected focus to skip b and land on c, got %+v", manager.PrimaryFocus)
	}

	if !manager.MoveFocus(1) {
		t.Fatalf("expected MoveFocus to succeed, wrapping past the last node")
	}
	if manager.PrimaryFocus != a {
		t.Fatalf("expected focus to wrap from c back to a, got %+v", manager.PrimaryFocus)
	}
}

func TestFocusInDirectionPicksNearestInDirection(t *testing.T) {
	manager := GetFocusManager()
	left := &FocusNode{CanRequestFocus: true, Rect: fixedRect{Left: 0, Top: 0, Right: 10, Bottom: 10}}
	right := &FocusNode{CanRequestFocus: true, Rect: fixedRect{Left: 100, Top: 0, Right: 110, Bottom: 10}}
	far := &FocusNode{CanRequestFocus: true, Rect: fixedRect{Left: 200, Top: 0, Right: 210, Bottom: 10}}
	scope := &FocusScopeNode{Children: []*FocusNode{left, far, right}}
	manager.RootScope = scope
	manager.PrimaryFocus = left

	scope.FocusInDirection(TraversalDirectionRight)

	if manager.PrimaryFocus != right {
		t.Fatalf("expected focus to move to the node on the right")
	}
}

func TestDispatchKeyEventFallsBackToRootScope(t *testing.T) {
	manager := GetFocusManager()
	leafHandled := false
	rootHandled := false
	leaf := &FocusNode{
		CanRequestFocus: true,
		OnKeyEvent: func(gestures.KeyEvent) KeyEventResult {
			leafHandled = true
			return KeyEventIgnored
		},
	}
	scope := &FocusScopeNode{
		Children: []*FocusNode{leaf},
	}
	scope.OnKeyEvent = func(gestures.KeyEvent) KeyEventResult {
		rootHandled = true
		return KeyEventHandled
	}
	manager.RootScope = scope
	manager.PrimaryFocus = leaf

	result := manager.DispatchKeyEvent(gestures.KeyEvent{Phase: gestures.KeyPhaseDown, Logical: "Enter"})

	if !leafHandled {
		t.Fatalf("expected leaf's OnKeyEvent to be invoked first")
	}
	if !rootHandled {
		t.Fatalf("expected root scope's OnKeyEvent to be invoked after leaf ignored the event")
	}
	if result != KeyEventHandled {
		t.Fatalf("expected KeyEventHandled, got %v", result)
	}
}
