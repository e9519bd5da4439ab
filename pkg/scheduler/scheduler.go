package scheduler

import "sync"

// FrameHooks are the phase callbacks the scheduler invokes in order during
// RunFrame. Layout/Paint/Composite are owned by pkg/layout's PipelineOwner;
// the scheduler only sequences them and accounts for their timing.
type FrameHooks struct {
	Layout    func()
	Paint     func()
	Composite func()
}

// Scheduler is the single-owner frame orchestrator described by spec.md
// §4.6: a priority queue for Build/UserInput/Idle work, the ticker-driven
// Animation band, and an explicit frame-phase sequence gated by a pluggable
// vsync source and a frame budget.
//
// Scheduling is single-threaded cooperative (spec.md §5): RunFrame and
// Dispatch must only be called from the foreground goroutine. Spawn hands
// background work to its own goroutine and marshals results back onto the
// queue.
type Scheduler struct {
	mu    sync.Mutex
	queue *PriorityQueue
	vsync VsyncSource
	budget *FrameBudget

	phase               FramePhase
	pendingFrameRequest bool
	tickRequested       bool
}

// New returns a scheduler targeting targetFPS, driven by vsync.
func New(vsync VsyncSource, targetFPS float64) *Scheduler {
	return &Scheduler{
		queue:  NewPriorityQueue(),
		vsync:  vsync,
		budget: NewFrameBudget(targetFPS),
		phase:  PhaseIdle,
	}
}

// Phase returns the scheduler's current frame phase.
func (s *Scheduler) Phase() FramePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Budget exposes the frame budget for diagnostics and tests.
func (s *Scheduler) Budget() *FrameBudget {
	return s.budget
}

// Dispatch enqueues a callback at the given priority band, to run on a
// future frame. Safe to call from any goroutine; requests a frame if none is
// pending.
func (s *Scheduler) Dispatch(priority Priority, callback func()) {
	if callback == nil {
		return
	}
	s.mu.Lock()
	s.queue.Push(priority, callback)
	s.mu.Unlock()
	s.RequestFrame()
}

// RequestFrame marks that a frame is needed. If a vsync source is attached
// and no tick has been requested yet, it asks for the next one.
func (s *Scheduler) RequestFrame() {
	s.mu.Lock()
	alreadyPending := s.pendingFrameRequest
	s.pendingFrameRequest = true
	needsTick := !s.tickRequested
	if needsTick {
		s.tickRequested = true
	}
	s.mu.Unlock()
	if alreadyPending || !needsTick || s.vsync == nil {
		return
	}
	s.vsync.RequestTick(func(Duration) {
		s.mu.Lock()
		s.tickRequested = false
		s.mu.Unlock()
		s.RunFrame(FrameHooks{})
	})
}

// NeedsFrame reports whether a frame should be produced: a pending explicit
// request, queued work, or an active ticker/animation all count.
func (s *Scheduler) NeedsFrame() bool {
	s.mu.Lock()
	pending := s.pendingFrameRequest
	queued := s.queue.Len() > 0
	s.mu.Unlock()
	return pending || queued || HasActiveTickers()
}

func (s *Scheduler) consumePendingFrameRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pendingFrameRequest
	s.pendingFrameRequest = false
	return pending
}

func (s *Scheduler) setPhase(p FramePhase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// RunFrame executes one full frame: queued UserInput, Animation and
// Build-band tasks drain first (highest band first), then Layout, then the
// Animation phase steps tickers, then Paint, then Composite, then Idle-band
// tasks if the frame is still under budget.
// hooks.Layout/Paint/Composite may be nil for phases the caller doesn't
// drive through the scheduler (e.g. a headless test exercising only the
// queue). Phase timing is measured against the scheduler's Clock, so tests
// can simulate an over-budget frame by advancing a fake clock mid-phase.
func (s *Scheduler) RunFrame(hooks FrameHooks) {
	s.consumePendingFrameRequest()
	s.budget.BeginFrame(NowSeconds())

	s.setPhase(PhaseBuild)
	s.timePhase(PhaseBuild, func() {
		s.mu.Lock()
		q := s.queue
		s.mu.Unlock()
		q.ExecuteUntil(PriorityBuild)
	})

	s.setPhase(PhaseLayout)
	s.timePhase(PhaseLayout, hooks.Layout)

	s.setPhase(PhaseAnimation)
	s.timePhase(PhaseAnimation, StepTickers)

	s.setPhase(PhasePaint)
	s.timePhase(PhasePaint, hooks.Paint)

	s.setPhase(PhaseComposite)
	s.timePhase(PhaseComposite, hooks.Composite)

	s.setPhase(PhaseIdle)
	if !s.budget.IsOverBudget(NowSeconds()) {
		s.mu.Lock()
		q := s.queue
		s.mu.Unlock()
		q.ExecuteUntil(PriorityIdle)
	}
}

func (s *Scheduler) timePhase(phase FramePhase, work func()) {
	if work == nil {
		return
	}
	before := NowSeconds()
	work()
	s.budget.RecordPhase(phase, NowSeconds()-before)
}

// DrainUserInput runs only the UserInput band, eagerly, ahead of the regular
// frame sequence, matching spec.md §4.6's "drained eagerly before any other
// band each time the event loop returns."
func (s *Scheduler) DrainUserInput() {
	s.mu.Lock()
	q := s.queue
	s.mu.Unlock()
	q.ExecuteUntil(PriorityUserInput)
}
