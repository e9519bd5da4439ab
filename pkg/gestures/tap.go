package gestures

import (
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// TapGestureRecognizer recognizes a simple tap: pointer down and up within
// touch slop, with no other recognizer in the arena winning first.
type TapGestureRecognizer struct {
	Arena       *GestureArena
	OnTapDown   func(TapDownDetails)
	OnTapUp     func(TapUpDetails)
	OnTap       func()
	OnTapCancel func()

	pointer  int64
	start    geom.Offset
	last     geom.Offset
	accepted bool
	rejected bool
	down     bool
}

// NewTapGestureRecognizer returns a tap recognizer competing in arena.
func NewTapGestureRecognizer(arena *GestureArena) *TapGestureRecognizer {
	return &TapGestureRecognizer{Arena: arena}
}

// AddPointer begins tracking a new pointer-down event.
func (r *TapGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	r.pointer = event.PointerID
	r.start = event.Position
	r.last = event.Position
	r.accepted = false
	r.rejected = false
	r.down = true
	if r.OnTapDown != nil {
		r.OnTapDown(TapDownDetails{Position: event.Position})
	}
	r.Arena.Add(event.PointerID, r)
}

// HandleEvent processes a move/up/cancel event for the tracked pointer.
func (r *TapGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.pointer || r.rejected || !r.down {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.last = event.Position
		total := math.Hypot(event.Position.X-r.start.X, event.Position.Y-r.start.Y)
		if total > DefaultTouchSlop {
			r.rejected = true
			r.down = false
			r.Arena.Reject(r.pointer, r)
		}
	case PointerPhaseUp:
		r.last = event.Position
		r.down = false
		r.Arena.Sweep(r.pointer)
	case PointerPhaseCancel:
		r.down = false
		if r.accepted && r.OnTapCancel != nil {
			r.OnTapCancel()
		}
		r.Arena.Reject(r.pointer, r)
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *TapGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != r.pointer || r.rejected {
		return
	}
	r.accepted = true
	if r.OnTapUp != nil {
		r.OnTapUp(TapUpDetails{Position: r.last})
	}
	if r.OnTap != nil {
		r.OnTap()
	}
}

// RejectGesture implements GestureArenaMember.
func (r *TapGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointer {
		return
	}
	r.rejected = true
}

// Dispose releases any arena state held for the current pointer.
func (r *TapGestureRecognizer) Dispose() {
	r.down = false
}

// DoubleTapGestureRecognizer recognizes two taps in quick succession within
// DefaultDoubleTapTimeout of each other and DefaultDoubleTapSlop of the
// first tap's position.
type DoubleTapGestureRecognizer struct {
	Arena       *GestureArena
	OnDoubleTap func()

	pointer       int64
	start         geom.Offset
	rejected      bool
	awaitingSecond bool
	firstUpTime   float64
	firstPosition geom.Offset
}

// NewDoubleTapGestureRecognizer returns a double-tap recognizer competing
// in arena.
func NewDoubleTapGestureRecognizer(arena *GestureArena) *DoubleTapGestureRecognizer {
	return &DoubleTapGestureRecognizer{Arena: arena}
}

// AddPointer begins tracking a new pointer-down event, either as the first
// or second tap of a pair.
func (r *DoubleTapGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	if r.awaitingSecond {
		gap := event.Timestamp - r.firstUpTime
		dist := math.Hypot(event.Position.X-r.firstPosition.X, event.Position.Y-r.firstPosition.Y)
		if gap <= DefaultDoubleTapTimeout && dist <= DefaultDoubleTapSlop {
			r.pointer = event.PointerID
			r.rejected = false
			r.Arena.Add(event.PointerID, r)
			return
		}
		r.awaitingSecond = false
	}
	r.pointer = event.PointerID
	r.start = event.Position
	r.rejected = false
	r.Arena.Add(event.PointerID, r)
}

// HandleEvent processes a move/up/cancel event for the tracked pointer.
func (r *DoubleTapGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		total := math.Hypot(event.Position.X-r.start.X, event.Position.Y-r.start.Y)
		if total > DefaultTouchSlop {
			r.rejected = true
			r.awaitingSecond = false
			r.Arena.Reject(r.pointer, r)
		}
	case PointerPhaseUp:
		if r.awaitingSecond {
			r.awaitingSecond = false
			r.Arena.Sweep(r.pointer)
			return
		}
		r.awaitingSecond = true
		r.firstUpTime = event.Timestamp
		r.firstPosition = event.Position
		r.Arena.Reject(r.pointer, r)
	case PointerPhaseCancel:
		r.rejected = true
		r.awaitingSecond = false
		r.Arena.Reject(r.pointer, r)
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *DoubleTapGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != r.pointer || r.rejected {
		return
	}
	if r.OnDoubleTap != nil {
		r.OnDoubleTap()
	}
}

// RejectGesture implements GestureArenaMember.
func (r *DoubleTapGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointer {
		return
	}
	r.rejected = true
}

// Dispose releases any arena state held for the current pointer.
func (r *DoubleTapGestureRecognizer) Dispose() {
	r.awaitingSecond = false
}
