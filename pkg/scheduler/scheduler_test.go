package scheduler

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

func TestSchedulerRunFrameOrdersPhases(t *testing.T) {
	prev := SetClock(&fakeClock{t: time.Unix(0, 0)})
	defer SetClock(prev)

	s := New(nil, 60)
	var order []string

	s.Dispatch(PriorityBuild, func() { order = append(order, "build") })

	hooks := FrameHooks{
		Layout:    func() { order = append(order, "layout") },
		Paint:     func() { order = append(order, "paint") },
		Composite: func() { order = append(order, "composite") },
	}
	s.RunFrame(hooks)

	want := []string{"build", "layout", "paint", "composite"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
	if s.Phase() != PhaseIdle {
		t.Fatalf("expected scheduler to settle in PhaseIdle after a frame, got %v", s.Phase())
	}
}

func TestSchedulerSkipsIdleWhenOverBudget(t *testing.T) {
	fc := &fakeClock{t: time.Unix(0, 0)}
	prev := SetClock(fc)
	defer SetClock(prev)

	s := New(nil, 60)
	ranIdle := false
	s.Dispatch(PriorityIdle, func() { ranIdle = true })

	s.RunFrame(FrameHooks{
		Layout: func() {
			// Simulate a Layout phase that blew well past the 16.67ms
			// budget for 60 Hz by advancing the fake clock a full second.
			fc.t = fc.t.Add(time.Second)
		},
	})

	if ranIdle {
		t.Fatalf("expected Idle-band task to be skipped once over budget")
	}
}

func TestSchedulerNeedsFrameReflectsQueuedWork(t *testing.T) {
	s := New(nil, 60)
	if s.NeedsFrame() {
		t.Fatalf("expected no frame needed on a fresh scheduler")
	}
	s.Dispatch(PriorityBuild, func() {})
	if !s.NeedsFrame() {
		t.Fatalf("expected queued work to require a frame")
	}
}

func TestFakeVsyncDeliversOnTick(t *testing.T) {
	vsync := NewFakeVsync()
	s := New(vsync, 60)

	fired := false
	s.Dispatch(PriorityBuild, func() { fired = true })

	if vsync.Pending() != 1 {
		t.Fatalf("expected one pending vsync request, got %d", vsync.Pending())
	}
	vsync.Tick(0)

	if !fired {
		t.Fatalf("expected dispatched task to run after vsync tick")
	}
}
