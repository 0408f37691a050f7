package simulator

import (
	"testing"
	"time"
)

func TestWaitingQueueEmptyPop(t *testing.T) {
	q := newWaitingQueue()
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got length %d", q.Len())
	}
	// Popping an empty set is the normal idle condition, not an error.
	if _, ok := q.Pop(); ok {
		t.Error("expected ok=false from empty queue")
	}
}

func TestWaitingQueuePriorityOrdering(t *testing.T) {
	q := newWaitingQueue()
	base := testStart()

	q.Push(Arrival{ID: 1, Time: base, Priority: PriorityNormal})
	q.Push(Arrival{ID: 2, Time: base.Add(time.Minute), Priority: PriorityEmergency})
	q.Push(Arrival{ID: 3, Time: base.Add(2 * time.Minute), Priority: PriorityNormal})
	q.Push(Arrival{ID: 4, Time: base.Add(3 * time.Minute), Priority: PriorityUrgent})

	// Emergency first regardless of arrival order, then urgent, then
	// normals in arrival order.
	expectedIDs := []int{2, 4, 1, 3}
	for i, want := range expectedIDs {
		a, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if a.ID != want {
			t.Errorf("pop %d: expected patient %d, got %d", i, want, a.ID)
		}
	}
}

func TestWaitingQueueFIFOWithinPriority(t *testing.T) {
	q := newWaitingQueue()
	base := testStart()

	for i := 0; i < 5; i++ {
		q.Push(Arrival{ID: i + 1, Time: base.Add(time.Duration(i) * time.Minute), Priority: PriorityUrgent})
	}
	for i := 0; i < 5; i++ {
		a, ok := q.Pop()
		if !ok || a.ID != i+1 {
			t.Fatalf("pop %d: expected patient %d, got %v (ok=%v)", i, i+1, a.ID, ok)
		}
	}
}

func TestWaitingQueueSnapshotNonDestructive(t *testing.T) {
	q := newWaitingQueue()
	base := testStart()

	q.Push(Arrival{ID: 1, Time: base, Priority: PriorityNormal})
	q.Push(Arrival{ID: 2, Time: base.Add(time.Minute), Priority: PriorityEmergency})
	q.Push(Arrival{ID: 3, Time: base.Add(2 * time.Minute), Priority: PriorityNormal})

	for i := 0; i < 3; i++ {
		snap := q.Snapshot()
		if len(snap) != 3 {
			t.Fatalf("snapshot %d: expected 3 entries, got %d", i, len(snap))
		}
		if snap[0].ID != 2 || snap[1].ID != 1 || snap[2].ID != 3 {
			t.Errorf("snapshot %d: wrong service order: %d, %d, %d",
				i, snap[0].ID, snap[1].ID, snap[2].ID)
		}
	}

	// Snapshots must not have consumed anything.
	if q.Len() != 3 {
		t.Fatalf("expected 3 waiting after snapshots, got %d", q.Len())
	}
	a, ok := q.Pop()
	if !ok || a.ID != 2 {
		t.Errorf("expected emergency patient 2 first, got %d (ok=%v)", a.ID, ok)
	}
}

func TestWaitingQueueSameArrivalTime(t *testing.T) {
	q := newWaitingQueue()
	at := testStart()

	// Identical priority and timestamp: lower ID wins for a stable order.
	q.Push(Arrival{ID: 3, Time: at, Priority: PriorityNormal})
	q.Push(Arrival{ID: 1, Time: at, Priority: PriorityNormal})
	q.Push(Arrival{ID: 2, Time: at, Priority: PriorityNormal})

	for _, want := range []int{1, 2, 3} {
		a, _ := q.Pop()
		if a.ID != want {
			t.Errorf("expected patient %d, got %d", want, a.ID)
		}
	}
}
