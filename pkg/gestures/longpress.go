package gestures

import (
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// LongPressGestureRecognizer recognizes a pointer held in place past
// DefaultLongPressTimeout without exceeding touch slop. Unlike
// TapGestureRecognizer it holds its arena entry (via Arena.Hold) to signal
// it wants to keep competing until its timer fires or it loses to a
// faster-resolving recognizer.
type LongPressGestureRecognizer struct {
	Arena             *GestureArena
	OnLongPressStart  func(LongPressStartDetails)
	OnLongPressMove   func(LongPressMoveUpdateDetails)
	OnLongPressEnd    func(LongPressEndDetails)
	OnLongPressCancel func()

	pointer   int64
	start     geom.Offset
	last      geom.Offset
	startTime float64
	accepted  bool
	rejected  bool
	fired     bool
}

// NewLongPressGestureRecognizer returns a long-press recognizer competing
// in arena. Callers must drive Poll (e.g. from the scheduler) for the
// timeout to fire while the pointer is held stationary.
func NewLongPressGestureRecognizer(arena *GestureArena) *LongPressGestureRecognizer {
	return &LongPressGestureRecognizer{Arena: arena}
}

// AddPointer begins tracking a new pointer-down event.
func (r *LongPressGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	r.pointer = event.PointerID
	r.start = event.Position
	r.last = event.Position
	r.startTime = event.Timestamp
	r.accepted = false
	r.rejected = false
	r.fired = false
	r.Arena.Add(event.PointerID, r)
	r.Arena.Hold(event.PointerID, r)
}

// HandleEvent processes a move/up/cancel event, and should also be driven
// by Poll on a timer tick so the timeout can fire while the pointer is
// stationary (no event arrives purely from the passage of time).
func (r *LongPressGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.last = event.Position
		total := math.Hypot(event.Position.X-r.start.X, event.Position.Y-r.start.Y)
		if total > DefaultTouchSlop {
			r.rejected = true
			r.Arena.Reject(r.pointer, r)
			return
		}
		if r.accepted && r.OnLongPressMove != nil {
			r.OnLongPressMove(LongPressMoveUpdateDetails{
				Position: event.Position,
				Offset:   geom.Offset{X: event.Position.X - r.start.X, Y: event.Position.Y - r.start.Y},
			})
		}
	case PointerPhaseUp:
		if r.accepted {
			if r.OnLongPressEnd != nil {
				r.OnLongPressEnd(LongPressEndDetails{Position: event.Position})
			}
		} else {
			r.Arena.Reject(r.pointer, r)
		}
	case PointerPhaseCancel:
		if r.accepted && r.OnLongPressCancel != nil {
			r.OnLongPressCancel()
		}
		r.Arena.Reject(r.pointer, r)
	}
}

// Poll should be called periodically (e.g. once per scheduler tick) while
// the pointer is held; it resolves the arena in this recognizer's favor
// once the long-press timeout has elapsed.
func (r *LongPressGestureRecognizer) Poll(now float64) {
	if r.rejected || r.accepted || r.fired {
		return
	}
	if now-r.startTime >= DefaultLongPressTimeout {
		r.fired = true
		r.Arena.Resolve(r.pointer, r)
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *LongPressGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != r.pointer || r.rejected {
		return
	}
	r.accepted = true
	if r.OnLongPressStart != nil {
		r.OnLongPressStart(LongPressStartDetails{Position: r.last})
	}
}

// RejectGesture implements GestureArenaMember.
func (r *LongPressGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointer {
		return
	}
	r.rejected = true
}

// Dispose releases any arena state held for the current pointer.
func (r *LongPressGestureRecognizer) Dispose() {
	r.accepted = false
	r.rejected = true
}
