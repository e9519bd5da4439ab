package scheduler

import "testing"

func TestFrameSampleBufferWrapsAndReportsChronological(t *testing.T) {
	buf := NewFrameSampleBuffer(3)
	buf.Add(FrameSample{Timestamp: 1})
	buf.Add(FrameSample{Timestamp: 2})
	buf.Add(FrameSample{Timestamp: 3})
	buf.Add(FrameSample{Timestamp: 4})

	snap := buf.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected capacity-bounded snapshot of 3, got %d", len(snap))
	}
	want := []Duration{2, 3, 4}
	for i, s := range snap {
		if s.Timestamp != want[i] {
			t.Fatalf("got %v, want %v", snap, want)
		}
	}
}

func TestFrameSampleBufferJankCount(t *testing.T) {
	buf := NewFrameSampleBuffer(4)
	buf.Add(FrameSample{IsJanky: true})
	buf.Add(FrameSample{IsJanky: false})
	buf.Add(FrameSample{IsJanky: true})

	if got := buf.JankCount(); got != 2 {
		t.Fatalf("expected 2 janky samples, got %d", got)
	}
}

func TestSampleFromBudgetMarksOverBudgetAsJanky(t *testing.T) {
	budget := NewFrameBudget(60)
	budget.BeginFrame(0)
	budget.RecordPhase(PhaseBuild, 0.02)

	sample := SampleFromBudget(budget, 0.02)

	if !sample.IsJanky {
		t.Fatalf("expected a 20ms frame at 60Hz (16.67ms budget) to be janky")
	}
	if sample.BuildTime != 0.02 {
		t.Fatalf("expected BuildTime to carry through, got %v", sample.BuildTime)
	}
}
