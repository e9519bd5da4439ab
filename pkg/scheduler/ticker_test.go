package scheduler

import (
	"testing"
	"time"
)

func TestTickerElapsedIsTickerLocal(t *testing.T) {
	fc := &fakeClock{t: time.Unix(0, 0)}
	prev := SetClock(fc)
	defer SetClock(prev)

	a := NewTicker(func(Duration) {})
	a.Start()
	defer a.Stop()

	fc.t = fc.t.Add(500 * time.Millisecond)
	b := NewTicker(func(Duration) {})
	b.Start()
	defer b.Stop()

	fc.t = fc.t.Add(500 * time.Millisecond)

	if got := a.Elapsed(); got < 0.99 || got > 1.01 {
		t.Fatalf("expected ticker a elapsed ~1s, got %v", got)
	}
	if got := b.Elapsed(); got < 0.49 || got > 0.51 {
		t.Fatalf("expected ticker b elapsed ~0.5s since it started later, got %v", got)
	}
}

func TestStepTickersInvokesOnlyActiveTickers(t *testing.T) {
	var fired []string
	a := NewTicker(func(Duration) { fired = append(fired, "a") })
	b := NewTicker(func(Duration) { fired = append(fired, "b") })
	a.Start()
	b.Start()
	b.Stop()

	StepTickers()

	if len(fired) != 1 || fired[0] != "a" {
		t.Fatalf("expected only active ticker a to fire, got %v", fired)
	}
	a.Stop()
}

func TestHasActiveTickersReflectsState(t *testing.T) {
	if HasActiveTickers() {
		t.Skip("another test left a ticker active; order-dependent, skip")
	}
	a := NewTicker(func(Duration) {})
	a.Start()
	if !HasActiveTickers() {
		t.Fatalf("expected HasActiveTickers true once a ticker is started")
	}
	a.Stop()
	if HasActiveTickers() {
		t.Fatalf("expected HasActiveTickers false once the ticker is stopped")
	}
}
