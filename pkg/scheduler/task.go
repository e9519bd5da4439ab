package scheduler

import "sync"

// Task is an awaitable handle for work dispatched onto the scheduler's
// foreground queue or a background executor. Results are always marshalled
// back to the foreground before touching the tree (spec.md §5).
type Task[T any] struct {
	mu       sync.Mutex
	done     bool
	canceled bool
	value    T
	err      error
	waiters  []chan struct{}
}

// newTask returns an unresolved task.
func newTask[T any]() *Task[T] {
	return &Task[T]{}
}

// Ready returns a task that is already complete with value, for call sites
// that need a Task[T] but have the result synchronously in hand.
func Ready[T any](value T) *Task[T] {
	t := newTask[T]()
	t.complete(value, nil)
	return t
}

func (t *Task[T]) complete(value T, err error) {
	t.mu.Lock()
	if t.done || t.canceled {
		t.mu.Unlock()
		return
	}
	t.value = value
	t.err = err
	t.done = true
	waiters := t.waiters
	t.waiters = nil
	t.mu.Unlock()
	for _, w := range waiters {
		close(w)
	}
}

// Done reports whether the task has completed (successfully or with error).
// Canceled tasks never report Done.
func (t *Task[T]) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Canceled reports whether the task was canceled before completing.
func (t *Task[T]) Canceled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canceled
}

// Cancel drops the task. A scheduled-but-not-yet-dequeued task is silently
// dropped when it runs; a task already completed is unaffected.
func (t *Task[T]) Cancel() {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return
	}
	t.canceled = true
	waiters := t.waiters
	t.waiters = nil
	t.mu.Unlock()
	for _, w := range waiters {
		close(w)
	}
}

// Await blocks the calling goroutine until the task completes or is
// canceled, returning the value and any error. Only meaningful off the
// foreground thread; foreground code should use a completion callback
// instead of blocking inside a phase.
func (t *Task[T]) Await() (T, error) {
	t.mu.Lock()
	if t.done || t.canceled {
		value, err := t.value, t.err
		t.mu.Unlock()
		return value, err
	}
	ch := make(chan struct{})
	t.waiters = append(t.waiters, ch)
	t.mu.Unlock()
	<-ch
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.err
}

// Spawn runs fn on a background goroutine and marshals its result back onto
// the scheduler's foreground queue at the given priority before resolving
// the returned task, so continuations observe it only from the foreground.
func Spawn[T any](s *Scheduler, priority Priority, fn func() (T, error)) *Task[T] {
	t := newTask[T]()
	go func() {
		value, err := fn()
		t.mu.Lock()
		canceled := t.canceled
		t.mu.Unlock()
		if canceled {
			return
		}
		s.Dispatch(priority, func() {
			t.complete(value, err)
		})
	}()
	return t
}

// Detach fires fn on a background goroutine without returning a handle; its
// result, if any, is discarded.
func Detach(fn func()) {
	go fn()
}
