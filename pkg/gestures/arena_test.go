package gestures

import (
	"testing"
	"time"

	"github.com/flui-dev/flui/pkg/scheduler"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

type recordingMember struct {
	name     string
	accepted bool
	rejected bool
}

func (m *recordingMember) AcceptGesture(pointerID int64) { m.accepted = true }
func (m *recordingMember) RejectGesture(pointerID int64) { m.rejected = true }

func TestGestureArenaResolveRejectsOthers(t *testing.T) {
	arena := NewGestureArena()
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	arena.Add(1, a)
	arena.Add(1, b)

	arena.Resolve(1, a)

	if !a.accepted {
		t.Fatalf("expected a to be accepted")
	}
	if !b.rejected {
		t.Fatalf("expected b to be rejected")
	}
}

func TestGestureArenaAutoResolveOnLastSurvivor(t *testing.T) {
	arena := NewGestureArena()
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	arena.Add(1, a)
	arena.Add(1, b)

	arena.Reject(1, b)

	if !a.accepted {
		t.Fatalf("expected a to auto-win once b rejected itself")
	}
}

func TestGestureArenaSweepPicksEarliestAdded(t *testing.T) {
	arena := NewGestureArena()
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	arena.Add(1, a)
	arena.Add(1, b)

	arena.Sweep(1)

	if !a.accepted {
		t.Fatalf("expected earliest-added member a to win on sweep")
	}
	if !b.rejected {
		t.Fatalf("expected b to be rejected on sweep")
	}
}

func TestGestureArenaSweepIsNoopAfterResolve(t *testing.T) {
	arena := NewGestureArena()
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	arena.Add(1, a)
	arena.Add(1, b)
	arena.Resolve(1, b)

	arena.Sweep(1)

	if a.accepted {
		t.Fatalf("a should never have been accepted")
	}
	if !b.accepted {
		t.Fatalf("b should remain the winner after sweep")
	}
}

func TestGestureArenaTeamSharesVictory(t *testing.T) {
	arena := NewGestureArena()
	team := NewGestureArenaTeam(arena)
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	other := &recordingMember{name: "other"}
	team.Add(1, a)
	team.Add(1, b)
	arena.Add(1, other)

	arena.Resolve(1, team)

	if !a.accepted || !b.accepted {
		t.Fatalf("expected both team members to be accepted once the team wins")
	}
	if !other.rejected {
		t.Fatalf("expected the non-team competitor to be rejected")
	}
}

func TestGestureArenaTeamSharesRejection(t *testing.T) {
	arena := NewGestureArena()
	team := NewGestureArenaTeam(arena)
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	other := &recordingMember{name: "other"}
	team.Add(1, a)
	team.Add(1, b)
	arena.Add(1, other)

	arena.Resolve(1, other)

	if !a.rejected || !b.rejected {
		t.Fatalf("expected both team members to be rejected once the team loses")
	}
	if !other.accepted {
		t.Fatalf("expected the winning competitor to be accepted")
	}
}

func TestGestureArenaDisambiguationTimeoutForcesEarliestWinner(t *testing.T) {
	start := time.Unix(0, 0)
	fc := &fakeClock{t: start}
	prev := scheduler.SetClock(fc)
	defer scheduler.SetClock(prev)

	arena := NewGestureArena()
	a := &recordingMember{name: "a"}
	b := &recordingMember{name: "b"}
	arena.Add(1, a)
	arena.Add(1, b)
	arena.Close(1)

	fc.t = start.Add(50 * time.Millisecond)
	scheduler.StepTickers()
	if a.accepted || b.accepted {
		t.Fatalf("expected no resolution before the disambiguation timeout elapses")
	}

	fc.t = start.Add(150 * time.Millisecond)
	scheduler.StepTickers()

	if !a.accepted {
		t.Fatalf("expected the earliest-added member to win once the disambiguation timeout elapses")
	}
	if !b.rejected {
		t.Fatalf("expected the other member to be rejected once the timeout forces a winner")
	}
}
