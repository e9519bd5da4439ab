package tree

import "testing"

type testTag struct{}

func (testTag) tagName() string { return "TestID" }

func TestArenaInsertAndParent(t *testing.T) {
	a := NewArena[string, testTag]()
	root := a.Insert("root")
	child := a.Insert("child")

	if err := a.SetParent(child, root); err != nil {
		t.Fatalf("SetParent failed: %v", err)
	}
	if got := a.Parent(child); got != root {
		t.Fatalf("Parent(child) = %v, want %v", got, root)
	}
	if got := a.ChildCount(root); got != 1 {
		t.Fatalf("ChildCount(root) = %d, want 1", got)
	}
}

func TestArenaCycleDetection(t *testing.T) {
	a := NewArena[string, testTag]()
	root := a.Insert("root")
	child := a.Insert("child")
	grandchild := a.Insert("grandchild")

	must(t, a.SetParent(child, root))
	must(t, a.SetParent(grandchild, child))

	if err := a.SetParent(root, grandchild); err != ErrCycleDetected {
		t.Fatalf("SetParent(root, grandchild) = %v, want ErrCycleDetected", err)
	}
	if err := a.SetParent(child, child); err != ErrCycleDetected {
		t.Fatalf("SetParent(child, child) = %v, want ErrCycleDetected", err)
	}
}

func TestArenaDescendantsPreOrder(t *testing.T) {
	a := NewArena[string, testTag]()
	root := a.Insert("root")
	left := a.Insert("left")
	right := a.Insert("right")
	leftLeft := a.Insert("left-left")

	must(t, a.SetParent(left, root))
	must(t, a.SetParent(right, root))
	must(t, a.SetParent(leftLeft, left))

	var order []string
	for id := range a.Descendants(root) {
		order = append(order, *a.Get(id))
	}
	want := []string{"left", "left-left", "right"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestArenaRemoveDetachesSubtree(t *testing.T) {
	a := NewArena[string, testTag]()
	root := a.Insert("root")
	child := a.Insert("child")
	grandchild := a.Insert("grandchild")
	must(t, a.SetParent(child, root))
	must(t, a.SetParent(grandchild, child))

	if _, ok := a.Remove(child); !ok {
		t.Fatalf("Remove(child) failed")
	}
	if a.Contains(child) || a.Contains(grandchild) {
		t.Fatalf("child subtree still present after Remove")
	}
	if a.ChildCount(root) != 0 {
		t.Fatalf("root still reports a child after Remove")
	}
}

func TestDirtySetSortedByDepth(t *testing.T) {
	a := NewArena[string, testTag]()
	root := a.Insert("root")
	child := a.Insert("child")
	grandchild := a.Insert("grandchild")
	must(t, a.SetParent(child, root))
	must(t, a.SetParent(grandchild, child))

	d := NewDirtySet[testTag]()
	d.Mark(grandchild)
	d.Mark(root)
	d.Mark(child)

	sorted := SortedByDepth(d.Snapshot(), a.Depth, true)
	if sorted[0] != root || sorted[1] != child || sorted[2] != grandchild {
		t.Fatalf("SortedByDepth ascending = %v, want root,child,grandchild order", sorted)
	}

	desc := SortedByDepth(d.Snapshot(), a.Depth, false)
	if desc[0] != grandchild || desc[2] != root {
		t.Fatalf("SortedByDepth descending = %v, want grandchild,child,root order", desc)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
