package simulator

import (
	"sort"
	"time"
)

// GenerateArrivals converts per-hour arrival counts into a strictly
// time-ordered sequence of arrivals. Each of the k arrivals in hour h is
// placed at start + h hours + a uniform offset in [0, 60) minutes.
//
// The concatenated set is sorted by timestamp before IDs are assigned:
// uniform-within-hour sampling does not guarantee cross-hour ordering at
// hour boundaries, and downstream stages require non-decreasing times.
// Zero total arrivals yields an empty, valid sequence.
func GenerateArrivals(counts []int, start time.Time, src *RandomSource) []Arrival {
	arrivals := make([]Arrival, 0)
	for hour, k := range counts {
		hourStart := start.Add(time.Duration(hour) * time.Hour)
		for j := 0; j < k; j++ {
			offset := time.Duration(src.MinuteOffset() * float64(time.Minute))
			arrivals = append(arrivals, Arrival{
				Time:     hourStart.Add(offset),
				Priority: PriorityNormal, // Batch mode has no triage; everyone is a walk-in.
			})
		}
	}

	sort.Slice(arrivals, func(i, j int) bool {
		return arrivals[i].Time.Before(arrivals[j].Time)
	})

	// IDs are assigned after the sort so they follow service order.
	for i := range arrivals {
		arrivals[i].ID = i + 1
	}
	return arrivals
}
