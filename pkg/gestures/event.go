package gestures

// EventPropagation is returned by a pointer handler to control whether
// dispatch continues to the remaining handlers along a hit test's path
// (spec.md §4.5).
type EventPropagation int

const (
	// Continue lets dispatch proceed to the next handler along the path.
	Continue EventPropagation = iota
	// Stop terminates dispatch; no handler further along the path sees the
	// event.
	Stop
)

func (p EventPropagation) String() string {
	if p == Stop {
		return "stop"
	}
	return "continue"
}
