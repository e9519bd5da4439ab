// Package gestures implements the pointer event model, gesture arena
// conflict resolution, and the canonical gesture recognizers (spec.md §5).
//
// Built fresh: this package is imported throughout the teacher
// (pkg/widgets/gesture.go, pkg/widgets/bottom_sheet_drag.go,
// pkg/engine/engine.go, pkg/layout/paint.go, pkg/testing/gestures.go) but
// its defining files were never present in the retrieval. Grounded entirely
// on call-site evidence at those sites: PointerEvent's shape and phase
// constants from pkg/testing/gestures.go; the GestureArenaMember contract
// (AcceptGesture/RejectGesture) and GestureArena's Add/Hold/Resolve/
// Reject/Close/Sweep method set from pkg/widgets/bottom_sheet_drag.go's
// conditionalVerticalDragRecognizer; the DefaultTouchSlop threshold from
// the same file; recognizer method names (AddPointer/HandleEvent/Dispose) and
// Drag{Start,Update,End}Details field shapes from pkg/widgets/gesture.go.
package gestures

import "github.com/flui-dev/flui/pkg/geom"

// PointerPhase identifies the stage of a pointer's lifecycle.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerKind identifies the input device class.
type PointerKind int

const (
	PointerKindTouch PointerKind = iota
	PointerKindMouse
	PointerKindStylus
)

// PointerEvent describes a single pointer sample dispatched down the hit
// test chain (spec.md §4.5, §5.1).
type PointerEvent struct {
	PointerID int64
	Position  geom.Offset
	Delta     geom.Offset
	Phase     PointerPhase
	Kind      PointerKind
	Buttons   int
	Timestamp float64 // seconds, monotonic; 0 if unset
}

// DefaultTouchSlop is the minimum movement, in logical pixels, a pointer
// must travel before a drag-style recognizer commits to accepting the
// gesture over a tap.
const DefaultTouchSlop = 18.0

// DefaultDoubleTapSlop bounds how far apart two taps' positions may be and
// still count as a double tap.
const DefaultDoubleTapSlop = 100.0

// DefaultLongPressTimeout is how long a pointer must stay down, without
// exceeding touch slop, before a long press is recognized.
const DefaultLongPressTimeout = 0.5 // seconds

// DefaultDoubleTapTimeout bounds the gap between a tap's up event and the
// next tap's down event for the pair to count as a double tap.
const DefaultDoubleTapTimeout = 0.3 // seconds

// DefaultArenaDisambiguation is how long a gesture arena waits for its
// members to resolve naturally (a Reject down to one survivor, an explicit
// Resolve, or a Sweep on pointer-up) before forcibly accepting the
// earliest-added surviving entry, matching internal/config.Config's
// ArenaDisambiguation default.
const DefaultArenaDisambiguation = 0.1 // seconds

