// Package tree provides the generic arena substrate that every node tree in
// the engine (render tree, focus tree) is built on: an opaque handle type,
// and the concrete Arena and DirtySet types that read, navigate, write and
// dirty-track nodes by it. No separate capability interfaces are declared.
package tree

import "fmt"

// Tag distinguishes handle families so a RenderID can never be mistaken for
// a FocusID or PointerID at compile time, per spec.md §3's "distinct handle
// types per arena" requirement.
type Tag interface {
	tagName() string
}

// ID is an opaque, non-zero, niche-optimizable handle into an arena of Tag T.
// The zero value is never a valid handle (arena slot indices are offset by
// one internally) so ID{} reliably means "no id".
type ID[T Tag] struct {
	index      uint32
	generation uint32
}

// Valid reports whether the id is non-zero.
func (id ID[T]) Valid() bool { return id.index != 0 }

func (id ID[T]) String() string {
	var zero T
	return fmt.Sprintf("%s(%d#%d)", zero.tagName(), id.index, id.generation)
}

func newID[T Tag](index, generation uint32) ID[T] {
	return ID[T]{index: index + 1, generation: generation}
}

func (id ID[T]) slot() (uint32, bool) {
	if id.index == 0 {
		return 0, false
	}
	return id.index - 1, true
}

// RenderTag identifies handles into the render-object arena.
type RenderTag struct{}

func (RenderTag) tagName() string { return "RenderID" }

// FocusTag identifies handles into the focus-node arena.
type FocusTag struct{}

func (FocusTag) tagName() string { return "FocusID" }

// PointerTag identifies pointer (touch/mouse) identifiers.
type PointerTag struct{}

func (PointerTag) tagName() string { return "PointerID" }

// TimerTag identifies scheduler timer handles.
type TimerTag struct{}

func (TimerTag) tagName() string { return "TimerID" }

// RenderID is a handle into the render-object arena.
type RenderID = ID[RenderTag]

// FocusID is a handle into the focus-node arena.
type FocusID = ID[FocusTag]
