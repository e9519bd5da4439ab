package gestures

import "github.com/flui-dev/flui/pkg/geom"

const velocitySampleWindow = 0.1 // seconds; samples older than this are dropped

type velocitySample struct {
	time     float64
	position geom.Offset
}

// VelocityTracker estimates a pointer's instantaneous velocity from its
// recent position history, used by drag/scale/fling recognizers. It keeps
// the samples of the last velocitySampleWindow seconds on both axes and
// derives the velocity from the oldest and newest of them only; the
// samples in between are not weighted or fitted.
type VelocityTracker struct {
	samples []velocitySample
}

// NewVelocityTracker returns an empty tracker.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{}
}

// AddPosition records a new sample at the given time (seconds, monotonic).
func (t *VelocityTracker) AddPosition(time float64, position geom.Offset) {
	t.samples = append(t.samples, velocitySample{time: time, position: position})
	cutoff := time - velocitySampleWindow
	i := 0
	for i < len(t.samples) && t.samples[i].time < cutoff {
		i++
	}
	if i > 0 {
		t.samples = t.samples[i:]
	}
}

// Velocity returns the estimated velocity in pixels/second, computed as the
// displacement between the oldest and newest retained sample divided by
// elapsed time. Returns the zero offset if fewer than two samples remain.
func (t *VelocityTracker) Velocity() geom.Offset {
	if len(t.samples) < 2 {
		return geom.Offset{}
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	dt := last.time - first.time
	if dt <= 0 {
		return geom.Offset{}
	}
	return geom.Offset{
		X: (last.position.X - first.position.X) / dt,
		Y: (last.position.Y - first.position.Y) / dt,
	}
}

// Reset discards all recorded samples.
func (t *VelocityTracker) Reset() {
	t.samples = t.samples[:0]
}
