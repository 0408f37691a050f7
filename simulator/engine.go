package simulator

import (
	"fmt"
	"time"
)

// SimulationResult is the output of a batch run: one service record per
// arrival plus a parallel queue-length series. QueueLengths[i] is the number
// of arrivals still waiting at the moment arrival i began service.
type SimulationResult struct {
	Records      []ServiceRecord `json:"records"`
	QueueLengths []int           `json:"queueLengths"`
}

// RunSimulation generates a full batch run from the configured rates:
// Poisson per-hour arrival counts, uniform within-hour arrival times, and
// Poisson service durations, fed through the single-server scan.
// Deterministic for a fixed RandomSeed.
func RunSimulation(config SimConfig) (*SimulationResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	src := NewRandomSource(config.RandomSeed)

	counts, err := src.ArrivalCounts(config.AvgArrivalRate, config.NumHours)
	if err != nil {
		return nil, err
	}
	arrivals := GenerateArrivals(counts, config.EffectiveStart(), src)

	durations, err := src.ServiceDurations(config.AvgServiceRate, len(arrivals))
	if err != nil {
		return nil, err
	}
	return Simulate(arrivals, durations)
}

// Simulate runs the single-server, first-arrival, no-priority scan over a
// time-ordered arrival sequence. Exported separately from RunSimulation so
// fixed scenarios can be replayed without any random draws.
//
// The scan keeps one cursor, the time the server next becomes free:
//
//	serviceStart[i] = max(arrival[i], serverFree)
//	serverFree      = serviceStart[i] + duration[i]
//
// The queue length recorded for arrival i is the count of later-indexed
// arrivals whose arrival time is <= serviceStart[i]. Downstream consumers
// depend on this exact definition; do not substitute a conventional
// live-queue-length metric.
func Simulate(arrivals []Arrival, durations []int) (*SimulationResult, error) {
	if len(durations) < len(arrivals) {
		return nil, ErrInvalidParameter(fmt.Sprintf(
			"need one service duration per arrival: %d arrivals, %d durations",
			len(arrivals), len(durations)))
	}
	records := make([]ServiceRecord, 0, len(arrivals))
	queueLengths := make([]int, 0, len(arrivals))

	var serverFree time.Time
	for i, a := range arrivals {
		start := a.Time
		if serverFree.After(start) {
			start = serverFree
		}
		end := start.Add(time.Duration(durations[i]) * time.Minute)
		serverFree = end

		waiting := 0
		for j := i + 1; j < len(arrivals); j++ {
			if !arrivals[j].Time.After(start) {
				waiting++
			}
		}

		records = append(records, ServiceRecord{
			PatientID:      a.ID,
			Priority:       a.Priority,
			ArrivalTime:    a.Time,
			ServiceStart:   start,
			ServiceEnd:     end,
			ServiceMinutes: durations[i],
		})
		queueLengths = append(queueLengths, waiting)
	}

	return &SimulationResult{Records: records, QueueLengths: queueLengths}, nil
}
