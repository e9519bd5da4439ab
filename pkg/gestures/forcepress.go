package gestures

// DefaultForcePressStartPressure is the normalized pressure (0-1) a
// pointer must reach before a force press is recognized as started.
const DefaultForcePressStartPressure = 0.4

// DefaultForcePressPeakPressure is the normalized pressure a pointer must
// reach for OnPeak to fire.
const DefaultForcePressPeakPressure = 0.85

// ForcePressGestureRecognizer recognizes pressure-sensitive input (3D
// Touch / force touch styluses) crossing configured start and peak
// pressure thresholds. Pointer kinds that never report meaningful pressure
// simply never cross DefaultForcePressStartPressure, so this recognizer is
// inert on ordinary touch/mouse input without special-casing PointerKind.
type ForcePressGestureRecognizer struct {
	Arena   *GestureArena
	OnStart func(ForcePressDetails)
	OnPeak  func(ForcePressDetails)
	OnEnd   func(ForcePressDetails)

	pointer      int64
	rejected     bool
	started      bool
	peaked       bool
}

// NewForcePressGestureRecognizer returns a force-press recognizer competing
// in arena.
func NewForcePressGestureRecognizer(arena *GestureArena) *ForcePressGestureRecognizer {
	return &ForcePressGestureRecognizer{Arena: arena}
}

// AddPointer begins tracking a new pointer-down event.
func (r *ForcePressGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	r.pointer = event.PointerID
	r.rejected = false
	r.started = false
	r.peaked = false
	r.Arena.Add(event.PointerID, r)
}

// HandlePressure processes a pressure-carrying pointer sample (spec.md §5:
// pressure is not part of the core PointerEvent used by the other
// recognizers, so callers feed it here explicitly).
func (r *ForcePressGestureRecognizer) HandlePressure(event PointerEvent, pressure float64) {
	if event.PointerID != r.pointer || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove, PointerPhaseDown:
		if !r.started && pressure >= DefaultForcePressStartPressure {
			r.started = true
			r.Arena.Resolve(r.pointer, r)
			if r.OnStart != nil {
				r.OnStart(ForcePressDetails{Position: event.Position, Pressure: pressure})
			}
		}
		if r.started && !r.peaked && pressure >= DefaultForcePressPeakPressure {
			r.peaked = true
			if r.OnPeak != nil {
				r.OnPeak(ForcePressDetails{Position: event.Position, Pressure: pressure})
			}
		}
	case PointerPhaseUp, PointerPhaseCancel:
		if r.started && r.OnEnd != nil {
			r.OnEnd(ForcePressDetails{Position: event.Position, Pressure: pressure})
		}
		if !r.started {
			r.Arena.Reject(r.pointer, r)
		}
	}
}

// HandleEvent processes a non-pressure event for the tracked pointer; up
// and cancel are forwarded to HandlePressure with zero pressure so OnEnd
// still fires for an in-progress press.
func (r *ForcePressGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		r.HandlePressure(event, 0)
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *ForcePressGestureRecognizer) AcceptGesture(pointerID int64) {}

// RejectGesture implements GestureArenaMember.
func (r *ForcePressGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID == r.pointer {
		r.rejected = true
	}
}

// Dispose releases any arena state held for the current pointer.
func (r *ForcePressGestureRecognizer) Dispose() {
	r.rejected = true
}
