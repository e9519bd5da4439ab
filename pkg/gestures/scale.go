package gestures

import (
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// ScaleGestureRecognizer recognizes a multi-touch pinch/rotate gesture. It
// tracks every pointer added to it; scale is reported relative to the
// initial separation of the first two pointers and rotation relative to
// their initial bearing, while the focal point averages all tracked pointers.
type ScaleGestureRecognizer struct {
	Arena       *GestureArena
	OnStart     func(ScaleStartDetails)
	OnUpdate    func(ScaleUpdateDetails)
	OnEnd       func(ScaleEndDetails)

	pointers      map[int64]geom.Offset
	order         []int64
	initialSpan   float64
	initialAngle  float64
	accepted      bool
	rejected      bool
	started       bool
	focalTracker  VelocityTracker
}

// NewScaleGestureRecognizer returns a scale recognizer competing in arena.
func NewScaleGestureRecognizer(arena *GestureArena) *ScaleGestureRecognizer {
	return &ScaleGestureRecognizer{Arena: arena, pointers: make(map[int64]geom.Offset)}
}

// AddPointer begins tracking an additional pointer-down event. The first
// pointer enters the arena as a candidate; a second pointer promotes this
// gesture by resolving the arena in its own favor, since a scale can only
// be recognized once two pointers are present.
func (r *ScaleGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	if len(r.pointers) == 0 {
		r.rejected = false
		r.accepted = false
		r.started = false
		r.Arena.Add(event.PointerID, r)
	}
	r.pointers[event.PointerID] = event.Position
	r.order = append(r.order, event.PointerID)
	if len(r.pointers) == 2 {
		r.initialSpan = r.span()
		r.initialAngle = r.angle()
		if len(r.order) > 0 {
			r.Arena.Resolve(r.order[0], r)
		}
	}
}

func (r *ScaleGestureRecognizer) span() float64 {
	if len(r.order) < 2 {
		return 0
	}
	a, b := r.pointers[r.order[0]], r.pointers[r.order[1]]
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func (r *ScaleGestureRecognizer) angle() float64 {
	if len(r.order) < 2 {
		return 0
	}
	a, b := r.pointers[r.order[0]], r.pointers[r.order[1]]
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

func (r *ScaleGestureRecognizer) focalPoint() geom.Offset {
	var sum geom.Offset
	for _, p := range r.pointers {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(r.pointers))
	if n == 0 {
		return geom.Offset{}
	}
	return geom.Offset{X: sum.X / n, Y: sum.Y / n}
}

// HandleEvent processes a move/up/cancel event for a tracked pointer.
func (r *ScaleGestureRecognizer) HandleEvent(event PointerEvent) {
	if _, tracked := r.pointers[event.PointerID]; !tracked || r.rejected {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.pointers[event.PointerID] = event.Position
		if !r.accepted || len(r.pointers) < 2 {
			return
		}
		focal := r.focalPoint()
		r.focalTracker.AddPosition(event.Timestamp, focal)
		if !r.started {
			r.started = true
			if r.OnStart != nil {
				r.OnStart(ScaleStartDetails{FocalPoint: focal})
			}
			return
		}
		scale := 1.0
		if r.initialSpan > 0 {
			scale = r.span() / r.initialSpan
		}
		if r.OnUpdate != nil {
			r.OnUpdate(ScaleUpdateDetails{FocalPoint: focal, Scale: scale, Rotation: r.angle() - r.initialAngle})
		}
	case PointerPhaseUp, PointerPhaseCancel:
		delete(r.pointers, event.PointerID)
		r.order = removePointer(r.order, event.PointerID)
		if len(r.pointers) == 0 {
			if r.accepted && r.started && r.OnEnd != nil {
				r.OnEnd(ScaleEndDetails{Velocity: r.focalTracker.Velocity()})
			}
			r.accepted = false
			r.started = false
		}
	}
}

func removePointer(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// AcceptGesture implements GestureArenaMember.
func (r *ScaleGestureRecognizer) AcceptGesture(pointerID int64) {
	r.accepted = true
}

// RejectGesture implements GestureArenaMember.
func (r *ScaleGestureRecognizer) RejectGesture(pointerID int64) {
	r.rejected = true
}

// Dispose releases all tracked pointers.
func (r *ScaleGestureRecognizer) Dispose() {
	r.pointers = make(map[int64]geom.Offset)
	r.order = nil
	r.accepted = false
	r.started = false
}
