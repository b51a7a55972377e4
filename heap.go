package scheduler

// fireNode is one entry in the pending min-heap: a FireRecord plus an
// insertion sequence used to break ties among equal Time values, so
// simultaneous fires dispatch in the order they were scheduled.
type fireNode struct {
	record     FireRecord
	seq        uint64
	generation uint64
}

// fireHeap is a min-heap of fireNode ordered by (Time, seq) ascending. It
// implements container/heap.Interface.
type fireHeap []fireNode

func (h fireHeap) Len() int { return len(h) }

func (h fireHeap) Less(i, j int) bool {
	ti, tj := h[i].record.Time, h[j].record.Time
	if ti.Equal(tj) {
		return h[i].seq < h[j].seq
	}
	return ti.Before(tj)
}

func (h fireHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *fireHeap) Push(x any) {
	*h = append(*h, x.(fireNode))
}

func (h *fireHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
