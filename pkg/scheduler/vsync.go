package scheduler

// VsyncSource delivers a callback on each display refresh. Platform windows
// supply a real implementation; tests drive a fake one by calling Tick
// directly (see FakeVsync).
type VsyncSource interface {
	// RequestTick arranges for callback to be invoked on the next vsync.
	// Implementations may coalesce multiple outstanding requests into one
	// callback per tick.
	RequestTick(callback func(now Duration))
}

// FakeVsync is a manually-driven vsync source for deterministic tests: each
// call to Tick fires every callback requested since the previous Tick.
type FakeVsync struct {
	pending []func(now Duration)
}

// NewFakeVsync returns an idle fake vsync source.
func NewFakeVsync() *FakeVsync {
	return &FakeVsync{}
}

// RequestTick implements VsyncSource.
func (f *FakeVsync) RequestTick(callback func(now Duration)) {
	if callback != nil {
		f.pending = append(f.pending, callback)
	}
}

// Tick fires all pending callbacks with the given timestamp and clears the
// pending set.
func (f *FakeVsync) Tick(now Duration) {
	callbacks := f.pending
	f.pending = nil
	for _, cb := range callbacks {
		cb(now)
	}
}

// Pending reports how many callbacks are awaiting the next Tick.
func (f *FakeVsync) Pending() int {
	return len(f.pending)
}
