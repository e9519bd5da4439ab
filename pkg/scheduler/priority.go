package scheduler

// Priority is a scheduling band. Bands are strictly ordered; no task of a
// lower band runs while a task at a higher band is queued and not yet
// dispatched (spec.md §4.6, invariant 8).
type Priority int

const (
	PriorityIdle Priority = iota
	PriorityBuild
	PriorityAnimation
	PriorityUserInput
)

// String renders the band name for logging.
func (p Priority) String() string {
	switch p {
	case PriorityUserInput:
		return "UserInput"
	case PriorityAnimation:
		return "Animation"
	case PriorityBuild:
		return "Build"
	case PriorityIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// PriorityQueue holds pending callbacks in four strict bands. Within a band,
// tasks run FIFO.
type PriorityQueue struct {
	bands [4][]func()
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{}
}

// Push enqueues task at the given priority.
func (q *PriorityQueue) Push(p Priority, task func()) {
	if task == nil {
		return
	}
	q.bands[p] = append(q.bands[p], task)
}

// Len returns the total number of pending tasks across all bands.
func (q *PriorityQueue) Len() int {
	n := 0
	for _, b := range q.bands {
		n += len(b)
	}
	return n
}

// HighestPending returns the priority of the highest-banded non-empty queue,
// and false if the queue is empty.
func (q *PriorityQueue) HighestPending() (Priority, bool) {
	for p := PriorityUserInput; p >= PriorityIdle; p-- {
		if len(q.bands[p]) > 0 {
			return p, true
		}
	}
	return 0, false
}

// ExecuteUntil runs all queued tasks at priority >= p, highest band first,
// draining each band fully (including tasks that band's own callbacks
// enqueue) before moving to the next lower band.
func (q *PriorityQueue) ExecuteUntil(p Priority) {
	for {
		band, ok := q.HighestPending()
		if !ok || band < p {
			return
		}
		task := q.bands[band][0]
		q.bands[band] = q.bands[band][1:]
		task()
	}
}

// ExecuteAll drains every band, highest priority first.
func (q *PriorityQueue) ExecuteAll() {
	q.ExecuteUntil(PriorityIdle)
}
