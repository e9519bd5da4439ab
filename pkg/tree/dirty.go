package tree

import "slices"

// DirtySet tracks a side-band collection of dirty ids without touching the
// node storage itself, per spec.md §4.1's dirty-tracking capability. It is
// grounded on the depth-sort/clear-then-rebuild idiom of the framework's
// BuildOwner.FlushBuild (core/build_owner.go): collect, sort by an
// externally supplied depth function, drain.
type DirtySet[T Tag] struct {
	members map[ID[T]]struct{}
}

// NewDirtySet creates an empty dirty set.
func NewDirtySet[T Tag]() *DirtySet[T] {
	return &DirtySet[T]{members: make(map[ID[T]]struct{})}
}

// Mark adds id to the dirty set. Idempotent.
func (d *DirtySet[T]) Mark(id ID[T]) {
	d.members[id] = struct{}{}
}

// Unmark removes id from the dirty set.
func (d *DirtySet[T]) Unmark(id ID[T]) {
	delete(d.members, id)
}

// Contains reports whether id is currently marked dirty.
func (d *DirtySet[T]) Contains(id ID[T]) bool {
	_, ok := d.members[id]
	return ok
}

// Len returns the number of dirty ids.
func (d *DirtySet[T]) Len() int { return len(d.members) }

// Snapshot returns the dirty ids without clearing the set (the "collection
// side-band" of spec.md §4.1).
func (d *DirtySet[T]) Snapshot() []ID[T] {
	out := make([]ID[T], 0, len(d.members))
	for id := range d.members {
		out = append(out, id)
	}
	return out
}

// Clear empties the set.
func (d *DirtySet[T]) Clear() {
	clear(d.members)
}

// SortedByDepth returns a copy of the dirty ids sorted by depth(id), via the
// supplied depth function, ascending (shallow to deep) when ascending is
// true or descending otherwise. Matches spec.md §4.3's flushLayout
// (ascending) and flushPaint (descending) orderings.
func SortedByDepth[T Tag](ids []ID[T], depth func(ID[T]) int, ascending bool) []ID[T] {
	out := append([]ID[T]{}, ids...)
	slices.SortFunc(out, func(a, b ID[T]) int {
		da, db := depth(a), depth(b)
		if ascending {
			return da - db
		}
		return db - da
	})
	return out
}
