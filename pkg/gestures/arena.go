package gestures

import "github.com/flui-dev/flui/pkg/scheduler"

// GestureArenaMember is implemented by gesture recognizers that compete in
// an arena for a pointer.
type GestureArenaMember interface {
	AcceptGesture(pointerID int64)
	RejectGesture(pointerID int64)
}

// arenaEntry tracks one member's state within a single pointer's arena.
type arenaEntry struct {
	member   GestureArenaMember
	held     bool
	rejected bool
}

// pointerArena holds the competing members for one in-flight pointer.
type pointerArena struct {
	entries  []*arenaEntry
	resolved bool
	winner   GestureArenaMember
	closed   bool
	timer    *scheduler.Ticker
}

// GestureArena resolves which of several competing recognizers "wins" a
// pointer, per pointer ID (spec.md §5.2).
//
// Resolution order, per the Open Question decision recorded in DESIGN.md:
// an explicit Resolve call wins immediately; otherwise, once only one
// non-rejected member remains, that member auto-wins; otherwise the
// earliest-added member wins when the arena is swept (pointer-up), or when
// it is closed and DefaultArenaDisambiguation elapses without any of the
// above.
type GestureArena struct {
	pointers map[int64]*pointerArena
}

// NewGestureArena returns an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{pointers: make(map[int64]*pointerArena)}
}

// DefaultArena is the process-wide arena shared by recognizers that don't
// construct their own, mirroring the teacher call sites'
// gestures.DefaultArena singleton.
var DefaultArena = NewGestureArena()

func (a *GestureArena) arenaFor(pointerID int64) *pointerArena {
	arena, ok := a.pointers[pointerID]
	if !ok {
		arena = &pointerArena{}
		a.pointers[pointerID] = arena
	}
	return arena
}

// Add registers member as a candidate for pointerID.
func (a *GestureArena) Add(pointerID int64, member GestureArenaMember) {
	arena := a.arenaFor(pointerID)
	if arena.resolved {
		return
	}
	arena.entries = append(arena.entries, &arenaEntry{member: member})
}

// Hold marks member as wanting to delay resolution (it has accepted
// provisionally but wants to keep competing, e.g. a long-press recognizer
// waiting out its timer). Currently tracked for bookkeeping only: holds
// don't block Sweep, matching the teacher call sites which never rely on a
// hold actually blocking auto-resolution.
func (a *GestureArena) Hold(pointerID int64, member GestureArenaMember) {
	arena := a.arenaFor(pointerID)
	for _, entry := range arena.entries {
		if entry.member == member {
			entry.held = true
			return
		}
	}
}

// Resolve declares member the winner of pointerID's arena immediately,
// notifying it via AcceptGesture and every other member via RejectGesture.
func (a *GestureArena) Resolve(pointerID int64, member GestureArenaMember) {
	arena := a.arenaFor(pointerID)
	if arena.resolved {
		return
	}
	a.resolveTo(pointerID, arena, member)
}

// Reject removes member from pointerID's arena. If only one candidate
// remains afterward, that candidate auto-wins.
func (a *GestureArena) Reject(pointerID int64, member GestureArenaMember) {
	arena := a.arenaFor(pointerID)
	if arena.resolved {
		return
	}
	for _, entry := range arena.entries {
		if entry.member == member {
			entry.rejected = true
			member.RejectGesture(pointerID)
		}
	}
	a.maybeAutoResolve(pointerID, arena)
}

func (a *GestureArena) maybeAutoResolve(pointerID int64, arena *pointerArena) {
	if arena.resolved {
		return
	}
	var remaining []*arenaEntry
	for _, entry := range arena.entries {
		if !entry.rejected {
			remaining = append(remaining, entry)
		}
	}
	if len(remaining) == 1 {
		a.resolveTo(pointerID, arena, remaining[0].member)
	}
}

func (a *GestureArena) resolveTo(pointerID int64, arena *pointerArena, winner GestureArenaMember) {
	arena.resolved = true
	if arena.timer != nil {
		arena.timer.Stop()
	}
	for _, entry := range arena.entries {
		if entry.member == winner {
			continue
		}
		if !entry.rejected {
			entry.rejected = true
			entry.member.RejectGesture(pointerID)
		}
	}
	winner.AcceptGesture(pointerID)
}

// Close finalizes pointerID's membership list without waiting for a sweep,
// used when a pointer-down's hit test has dispatched to every handler and no
// more members will be added this frame. Starts the DefaultArenaDisambiguation
// countdown: if nothing resolves the arena naturally (a Reject down to one
// survivor, an explicit Resolve, or a Sweep on pointer-up) before the timeout
// elapses, the earliest-added surviving member is forced to win, matching
// spec.md §4.5/§5's disambiguation timeout. Grounded on the
// pkg/scheduler.Ticker idiom already used for animation-band timing: the
// countdown is driven by the same per-frame elapsed-time callback rather than
// a separate wall-clock timer primitive.
func (a *GestureArena) Close(pointerID int64) {
	arena := a.arenaFor(pointerID)
	if arena.closed {
		return
	}
	arena.closed = true
	if arena.resolved {
		return
	}
	arena.timer = scheduler.NewTicker(func(elapsed scheduler.Duration) {
		a.onDisambiguationTick(pointerID, arena, elapsed)
	})
	arena.timer.Start()
}

func (a *GestureArena) onDisambiguationTick(pointerID int64, arena *pointerArena, elapsed scheduler.Duration) {
	if arena.resolved {
		arena.timer.Stop()
		return
	}
	if elapsed < DefaultArenaDisambiguation {
		return
	}
	for _, entry := range arena.entries {
		if !entry.rejected {
			a.resolveTo(pointerID, arena, entry.member)
			return
		}
	}
	arena.timer.Stop()
}

// Sweep forces resolution of pointerID's arena (typically on pointer-up):
// the earliest-added non-rejected member wins if nothing has resolved yet,
// then the arena's bookkeeping is discarded.
func (a *GestureArena) Sweep(pointerID int64) {
	arena, ok := a.pointers[pointerID]
	if !ok {
		return
	}
	if !arena.resolved {
		for _, entry := range arena.entries {
			if !entry.rejected {
				a.resolveTo(pointerID, arena, entry.member)
				break
			}
		}
	}
	if arena.timer != nil {
		arena.timer.Stop()
	}
	delete(a.pointers, pointerID)
}

// GestureArenaTeam groups cooperative recognizers that should compete in an
// arena as a single combined entry: winning resolves every team member as a
// winner instead of rejecting all but one (spec.md §4.5's "cooperative
// recognizers share victory; accepting the team resolves all members as
// winners"). A vertical-drag recognizer and a pan recognizer that both want
// to fire together on the same gesture are the motivating case.
//
// The team itself is the GestureArenaMember registered with the arena;
// members are tracked per pointer so a team instance can be reused across
// unrelated pointers without members from one leaking into another's
// resolution.
type GestureArenaTeam struct {
	arena   *GestureArena
	members map[int64][]GestureArenaMember
}

// NewGestureArenaTeam returns a team that competes in arena on behalf of
// whichever members are added to it.
func NewGestureArenaTeam(arena *GestureArena) *GestureArenaTeam {
	return &GestureArenaTeam{arena: arena, members: make(map[int64][]GestureArenaMember)}
}

// Add registers member as part of the team's entry for pointerID. The first
// call for a given pointer registers the team itself with the underlying
// arena; subsequent calls just grow the membership list the team resolves
// together.
func (t *GestureArenaTeam) Add(pointerID int64, member GestureArenaMember) {
	if len(t.members[pointerID]) == 0 {
		t.arena.Add(pointerID, t)
	}
	t.members[pointerID] = append(t.members[pointerID], member)
}

// AcceptGesture implements GestureArenaMember: winning the arena accepts
// every team member for pointerID, not just the one the arena saw.
func (t *GestureArenaTeam) AcceptGesture(pointerID int64) {
	for _, member := range t.members[pointerID] {
		member.AcceptGesture(pointerID)
	}
	delete(t.members, pointerID)
}

// RejectGesture implements GestureArenaMember: losing the arena rejects
// every team member for pointerID.
func (t *GestureArenaTeam) RejectGesture(pointerID int64) {
	for _, member := range t.members[pointerID] {
		member.RejectGesture(pointerID)
	}
	delete(t.members, pointerID)
}
