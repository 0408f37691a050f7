package simulator

import (
	"testing"
	"time"
)

func testStart() time.Time {
	return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
}

func TestGenerateArrivalsEmpty(t *testing.T) {
	src := NewRandomSource(1)

	t.Run("no hours", func(t *testing.T) {
		arrivals := GenerateArrivals(nil, testStart(), src)
		if len(arrivals) != 0 {
			t.Errorf("expected no arrivals, got %d", len(arrivals))
		}
	})

	t.Run("all-zero counts", func(t *testing.T) {
		arrivals := GenerateArrivals([]int{0, 0, 0}, testStart(), src)
		if len(arrivals) != 0 {
			t.Errorf("expected no arrivals, got %d", len(arrivals))
		}
	})
}

func TestGenerateArrivalsOrderingAndIDs(t *testing.T) {
	src := NewRandomSource(42)
	start := testStart()

	arrivals := GenerateArrivals([]int{3, 0, 2, 5}, start, src)
	if len(arrivals) != 10 {
		t.Fatalf("expected 10 arrivals, got %d", len(arrivals))
	}

	end := start.Add(4 * time.Hour)
	for i, a := range arrivals {
		if a.ID != i+1 {
			t.Errorf("arrival %d: expected ID %d, got %d", i, i+1, a.ID)
		}
		if a.Time.Before(start) || !a.Time.Before(end) {
			t.Errorf("arrival %d at %v outside simulation window [%v, %v)", i, a.Time, start, end)
		}
		if i > 0 && a.Time.Before(arrivals[i-1].Time) {
			t.Errorf("arrival %d at %v is earlier than arrival %d at %v",
				i, a.Time, i-1, arrivals[i-1].Time)
		}
	}
}

func TestGenerateArrivalsSortsAcrossHourBoundaries(t *testing.T) {
	// With many arrivals per hour, late offsets in hour h routinely land
	// after early offsets in hour h+1 before sorting. The output must still
	// be non-decreasing.
	src := NewRandomSource(7)
	counts := []int{20, 20, 20}

	arrivals := GenerateArrivals(counts, testStart(), src)
	if len(arrivals) != 60 {
		t.Fatalf("expected 60 arrivals, got %d", len(arrivals))
	}
	for i := 1; i < len(arrivals); i++ {
		if arrivals[i].Time.Before(arrivals[i-1].Time) {
			t.Fatalf("ordering violated at index %d", i)
		}
	}
}
