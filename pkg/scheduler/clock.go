// Package scheduler is the single-owner frame orchestrator: a priority task
// queue, the explicit frame-phase state machine, frame budget accounting, a
// pluggable vsync source, and the Ticker/TickerProvider pair that drives
// animations. See spec.md §4.6.
package scheduler

import "time"

// Clock provides time for the scheduler and its tickers. The default
// implementation uses system time; tests inject a fake clock via SetClock to
// drive frames deterministically without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the scheduler's time source and returns the previous
// clock so callers can restore it during test cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
