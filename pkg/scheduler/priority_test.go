package scheduler

import "testing"

func TestPriorityQueueOrdersHighestBandFirst(t *testing.T) {
	q := NewPriorityQueue()
	var order []string
	q.Push(PriorityIdle, func() { order = append(order, "idle") })
	q.Push(PriorityUserInput, func() { order = append(order, "input") })
	q.Push(PriorityBuild, func() { order = append(order, "build") })
	q.Push(PriorityAnimation, func() { order = append(order, "anim") })

	q.ExecuteAll()

	want := []string{"input", "anim", "build", "idle"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestPriorityQueueExecuteUntilSkipsLowerBands(t *testing.T) {
	q := NewPriorityQueue()
	ran := map[Priority]bool{}
	q.Push(PriorityIdle, func() { ran[PriorityIdle] = true })
	q.Push(PriorityBuild, func() { ran[PriorityBuild] = true })
	q.Push(PriorityUserInput, func() { ran[PriorityUserInput] = true })

	q.ExecuteUntil(PriorityBuild)

	if !ran[PriorityUserInput] || !ran[PriorityBuild] {
		t.Fatalf("expected UserInput and Build to run")
	}
	if ran[PriorityIdle] {
		t.Fatalf("expected Idle to be skipped")
	}
	if q.Len() != 1 {
		t.Fatalf("expected Idle task still queued, got len %d", q.Len())
	}
}

func TestPriorityQueueFIFOWithinBand(t *testing.T) {
	q := NewPriorityQueue()
	var order []int
	q.Push(PriorityBuild, func() { order = append(order, 1) })
	q.Push(PriorityBuild, func() { order = append(order, 2) })
	q.Push(PriorityBuild, func() { order = append(order, 3) })

	q.ExecuteAll()

	for i, v := range order {
		if v != i+1 {
			t.Fatalf("expected FIFO order 1,2,3, got %v", order)
		}
	}
}
