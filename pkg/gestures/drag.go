package gestures

import (
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// dragAxis constrains which component of movement a drag recognizer tracks.
type dragAxis int

const (
	dragAxisFree dragAxis = iota
	dragAxisHorizontal
	dragAxisVertical
)

// dragRecognizerCore is the shared state machine behind Pan/Horizontal/
// VerticalDragGestureRecognizer, generalizing
// conditionalVerticalDragRecognizer's slop-then-velocity-tracking logic to
// an arbitrary axis constraint.
type dragRecognizerCore struct {
	arena    *GestureArena
	axis     dragAxis
	pointer  int64
	start    geom.Offset
	last     geom.Offset
	tracker  VelocityTracker
	accepted bool
	rejected bool
}

func (c *dragRecognizerCore) addPointer(event PointerEvent, member GestureArenaMember) {
	c.pointer = event.PointerID
	c.start = event.Position
	c.last = event.Position
	c.tracker.Reset()
	c.tracker.AddPosition(event.Timestamp, event.Position)
	c.accepted = false
	c.rejected = false
	c.arena.Add(event.PointerID, member)
}

// primaryAndOrthogonal returns the axis-relevant scalar movement and the orthogonal one.
func (c *dragRecognizerCore) primaryAndOrthogonal(total geom.Offset) (primary, orthogonal float64) {
	switch c.axis {
	case dragAxisHorizontal:
		return math.Abs(total.X), math.Abs(total.Y)
	case dragAxisVertical:
		return math.Abs(total.Y), math.Abs(total.X)
	default:
		return math.Hypot(total.X, total.Y), 0
	}
}

func (c *dragRecognizerCore) handleMove(event PointerEvent, member GestureArenaMember) (delta geom.Offset, shouldDispatch bool, rejectedNow bool) {
	total := geom.Offset{X: event.Position.X - c.start.X, Y: event.Position.Y - c.start.Y}
	primary, orthogonal := c.primaryAndOrthogonal(total)

	if !c.accepted {
		if primary > DefaultTouchSlop && primary >= orthogonal {
			c.arena.Resolve(c.pointer, member)
		} else if c.axis != dragAxisFree && orthogonal > DefaultTouchSlop {
			c.rejected = true
			c.arena.Reject(c.pointer, member)
			return geom.Offset{}, false, true
		}
	}

	delta = geom.Offset{X: event.Position.X - c.last.X, Y: event.Position.Y - c.last.Y}
	c.tracker.AddPosition(event.Timestamp, event.Position)
	c.last = event.Position
	return delta, c.accepted, false
}

func (c *dragRecognizerCore) accept(pointerID int64) bool {
	if pointerID != c.pointer || c.rejected {
		return false
	}
	c.accepted = true
	return true
}

func (c *dragRecognizerCore) reject(pointerID int64) {
	if pointerID == c.pointer {
		c.rejected = true
	}
}

// PanGestureRecognizer recognizes an omnidirectional drag.
type PanGestureRecognizer struct {
	core dragRecognizerCore

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	started bool
}

// NewPanGestureRecognizer returns a pan recognizer competing in arena.
func NewPanGestureRecognizer(arena *GestureArena) *PanGestureRecognizer {
	return &PanGestureRecognizer{core: dragRecognizerCore{arena: arena, axis: dragAxisFree}}
}

// AddPointer begins tracking a new pointer-down event.
func (r *PanGestureRecognizer) AddPointer(event PointerEvent) {
	if r.core.arena == nil {
		return
	}
	r.started = false
	r.core.addPointer(event, r)
}

// HandleEvent processes a move/up/cancel event for the tracked pointer.
func (r *PanGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.core.pointer || r.core.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		delta, dispatch, _ := r.core.handleMove(event, r)
		if dispatch {
			r.ensureStarted(event.Position)
			if r.OnUpdate != nil {
				r.OnUpdate(DragUpdateDetails{Position: event.Position, Delta: delta})
			}
		}
	case PointerPhaseUp:
		if r.core.accepted {
			v := r.core.tracker.Velocity()
			if r.OnEnd != nil {
				r.OnEnd(DragEndDetails{Position: event.Position, Velocity: v, PrimaryVelocity: math.Hypot(v.X, v.Y)})
			}
		} else {
			r.core.arena.Reject(r.core.pointer, r)
		}
	case PointerPhaseCancel:
		if r.core.accepted && r.OnCancel != nil {
			r.OnCancel()
		}
		r.core.arena.Reject(r.core.pointer, r)
	}
}

func (r *PanGestureRecognizer) ensureStarted(position geom.Offset) {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: position})
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *PanGestureRecognizer) AcceptGesture(pointerID int64) {
	if r.core.accept(pointerID) {
		r.ensureStarted(r.core.last)
	}
}

// RejectGesture implements GestureArenaMember.
func (r *PanGestureRecognizer) RejectGesture(pointerID int64) { r.core.reject(pointerID) }

// Dispose releases any arena state held for the current pointer.
func (r *PanGestureRecognizer) Dispose() { r.core.rejected = true }

// HorizontalDragGestureRecognizer recognizes a drag dominant on the X axis,
// yielding to orthogonal (vertical) movement.
type HorizontalDragGestureRecognizer struct {
	core dragRecognizerCore

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	started bool
}

// NewHorizontalDragGestureRecognizer returns a horizontal-drag recognizer
// competing in arena.
func NewHorizontalDragGestureRecognizer(arena *GestureArena) *HorizontalDragGestureRecognizer {
	return &HorizontalDragGestureRecognizer{core: dragRecognizerCore{arena: arena, axis: dragAxisHorizontal}}
}

// AddPointer begins tracking a new pointer-down event.
func (r *HorizontalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if r.core.arena == nil {
		return
	}
	r.started = false
	r.core.addPointer(event, r)
}

// HandleEvent processes a move/up/cancel event for the tracked pointer.
func (r *HorizontalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.core.pointer || r.core.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		delta, dispatch, _ := r.core.handleMove(event, r)
		if dispatch {
			r.ensureStarted(event.Position)
			if r.OnUpdate != nil {
				r.OnUpdate(DragUpdateDetails{Position: event.Position, Delta: delta, PrimaryDelta: delta.X})
			}
		}
	case PointerPhaseUp:
		if r.core.accepted {
			v := r.core.tracker.Velocity()
			if r.OnEnd != nil {
				r.OnEnd(DragEndDetails{Position: event.Position, Velocity: v, PrimaryVelocity: v.X})
			}
		} else {
			r.core.arena.Reject(r.core.pointer, r)
		}
	case PointerPhaseCancel:
		if r.core.accepted && r.OnCancel != nil {
			r.OnCancel()
		}
		r.core.arena.Reject(r.core.pointer, r)
	}
}

func (r *HorizontalDragGestureRecognizer) ensureStarted(position geom.Offset) {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: position})
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *HorizontalDragGestureRecognizer) AcceptGesture(pointerID int64) {
	if r.core.accept(pointerID) {
		r.ensureStarted(r.core.last)
	}
}

// RejectGesture implements GestureArenaMember.
func (r *HorizontalDragGestureRecognizer) RejectGesture(pointerID int64) { r.core.reject(pointerID) }

// Dispose releases any arena state held for the current pointer.
func (r *HorizontalDragGestureRecognizer) Dispose() { r.core.rejected = true }

// VerticalDragGestureRecognizer recognizes a drag dominant on the Y axis,
// yielding to orthogonal (horizontal) movement. Directly generalizes
// bottom_sheet_drag.go's conditionalVerticalDragRecognizer but without its
// ShouldAccept veto hook, which belongs to the widget layer.
type VerticalDragGestureRecognizer struct {
	core dragRecognizerCore

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	started bool
}

// NewVerticalDragGestureRecognizer returns a vertical-drag recognizer
// competing in arena.
func NewVerticalDragGestureRecognizer(arena *GestureArena) *VerticalDragGestureRecognizer {
	return &VerticalDragGestureRecognizer{core: dragRecognizerCore{arena: arena, axis: dragAxisVertical}}
}

// AddPointer begins tracking a new pointer-down event.
func (r *VerticalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if r.core.arena == nil {
		return
	}
	r.started = false
	r.core.addPointer(event, r)
}

// HandleEvent processes a move/up/cancel event for the tracked pointer.
func (r *VerticalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if event.PointerID != r.core.pointer || r.core.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		delta, dispatch, _ := r.core.handleMove(event, r)
		if dispatch {
			r.ensureStarted(event.Position)
			if r.OnUpdate != nil {
				r.OnUpdate(DragUpdateDetails{Position: event.Position, Delta: delta, PrimaryDelta: delta.Y})
			}
		}
	case PointerPhaseUp:
		if r.core.accepted {
			v := r.core.tracker.Velocity()
			if r.OnEnd != nil {
				r.OnEnd(DragEndDetails{Position: event.Position, Velocity: v, PrimaryVelocity: v.Y})
			}
		} else {
			r.core.arena.Reject(r.core.pointer, r)
		}
	case PointerPhaseCancel:
		if r.core.accepted && r.OnCancel != nil {
			r.OnCancel()
		}
		r.core.arena.Reject(r.core.pointer, r)
	}
}

func (r *VerticalDragGestureRecognizer) ensureStarted(position geom.Offset) {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: position})
	}
}

// AcceptGesture implements GestureArenaMember.
func (r *VerticalDragGestureRecognizer) AcceptGesture(pointerID int64) {
	if r.core.accept(pointerID) {
		r.ensureStarted(r.core.last)
	}
}

// RejectGesture implements GestureArenaMember.
func (r *VerticalDragGestureRecognizer) RejectGesture(pointerID int64) { r.core.reject(pointerID) }

// Dispose releases any arena state held for the current pointer.
func (r *VerticalDragGestureRecognizer) Dispose() { r.core.rejected = true }
