package simulator

import (
	"container/heap"
	"sort"
)

// waitingQueue is the non-preemptive priority waiting set for the live
// scheduler, ordered by (priority descending, arrival time ascending, id
// ascending). It supports non-destructive ordered iteration via Snapshot,
// so display code never has to drain and refill the queue.
type waitingQueue struct {
	items arrivalHeap
}

func newWaitingQueue() *waitingQueue {
	q := &waitingQueue{items: make(arrivalHeap, 0)}
	heap.Init(&q.items)
	return q
}

// Push adds an arrival at its priority rank.
func (q *waitingQueue) Push(a Arrival) {
	heap.Push(&q.items, a)
}

// Pop removes and returns the highest-priority, earliest-arrival patient.
// The second return is false when the set is empty; that is the scheduler's
// normal idle condition, not an error.
func (q *waitingQueue) Pop() (Arrival, bool) {
	if q.items.Len() == 0 {
		return Arrival{}, false
	}
	return heap.Pop(&q.items).(Arrival), true
}

// Len returns the number of waiting patients.
func (q *waitingQueue) Len() int {
	return q.items.Len()
}

// Snapshot returns a copy of the waiting set in service order without
// removing anything. Heap layout is not sorted order, so the copy is sorted
// with the same comparison the heap uses.
func (q *waitingQueue) Snapshot() []Arrival {
	out := make([]Arrival, len(q.items))
	copy(out, q.items)
	sort.Slice(out, func(i, j int) bool { return arrivalBefore(out[i], out[j]) })
	return out
}

// arrivalBefore reports whether a should be served before b.
func arrivalBefore(a, b Arrival) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.Time.Equal(b.Time) {
		return a.Time.Before(b.Time)
	}
	return a.ID < b.ID
}

// arrivalHeap implements heap.Interface for Arrival
type arrivalHeap []Arrival

func (h arrivalHeap) Len() int           { return len(h) }
func (h arrivalHeap) Less(i, j int) bool { return arrivalBefore(h[i], h[j]) }
func (h arrivalHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *arrivalHeap) Push(x interface{}) {
	*h = append(*h, x.(Arrival))
}

func (h *arrivalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
