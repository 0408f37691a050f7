package simulator

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedArrivals builds an arrival sequence from minute offsets relative to
// the test start time.
func fixedArrivals(offsets ...int) []Arrival {
	start := testStart()
	arrivals := make([]Arrival, len(offsets))
	for i, off := range offsets {
		arrivals[i] = Arrival{
			ID:       i + 1,
			Time:     start.Add(time.Duration(off) * time.Minute),
			Priority: PriorityNormal,
		}
	}
	return arrivals
}

func TestSimulateFixedScenario(t *testing.T) {
	// Arrivals 08:00, 08:05, 08:06 with durations 10, 3, 2 minutes.
	result, err := Simulate(fixedArrivals(0, 5, 6), []int{10, 3, 2})
	require.NoError(t, err)
	require.Len(t, result.Records, 3)
	require.Len(t, result.QueueLengths, 3)

	start := testStart()
	expectedStarts := []time.Time{
		start,                       // 08:00, server idle
		start.Add(10 * time.Minute), // 08:10, waits for patient 1
		start.Add(13 * time.Minute), // 08:13, waits for patient 2
	}
	expectedWaits := []float64{0, 5, 7}

	for i, rec := range result.Records {
		if !rec.ServiceStart.Equal(expectedStarts[i]) {
			t.Errorf("record %d: expected start %v, got %v", i, expectedStarts[i], rec.ServiceStart)
		}
		require.Equal(t, expectedWaits[i], rec.WaitMinutes(), "record %d wait", i)
	}

	// Patient 2 began at 08:10 with patient 3 (arrived 08:06) still waiting.
	require.Equal(t, []int{0, 1, 0}, result.QueueLengths)
}

func TestSimulateInvariants(t *testing.T) {
	config := DefaultConfig()
	config.RandomSeed = 1234
	config.StartTime = testStart()
	config.NumHours = 12
	config.AvgArrivalRate = 8.0 // Oversaturated: plenty of queueing

	result, err := RunSimulation(config)
	require.NoError(t, err)
	require.NotEmpty(t, result.Records)
	require.Len(t, result.QueueLengths, len(result.Records))

	for i, rec := range result.Records {
		if rec.ServiceStart.Before(rec.ArrivalTime) {
			t.Errorf("record %d: service start %v before arrival %v", i, rec.ServiceStart, rec.ArrivalTime)
		}
		wantEnd := rec.ServiceStart.Add(time.Duration(rec.ServiceMinutes) * time.Minute)
		if !rec.ServiceEnd.Equal(wantEnd) {
			t.Errorf("record %d: end %v != start + %d min", i, rec.ServiceEnd, rec.ServiceMinutes)
		}
		if rec.ServiceMinutes < 1 {
			t.Errorf("record %d: non-positive service duration %d", i, rec.ServiceMinutes)
		}
		if rec.WaitTime() < 0 {
			t.Errorf("record %d: negative wait %v", i, rec.WaitTime())
		}
	}

	// Single-server exclusivity: sorted by start, each window must end
	// before the next begins.
	records := append([]ServiceRecord{}, result.Records...)
	sort.Slice(records, func(i, j int) bool { return records[i].ServiceStart.Before(records[j].ServiceStart) })
	for i := 1; i < len(records); i++ {
		if records[i].ServiceStart.Before(records[i-1].ServiceEnd) {
			t.Errorf("service windows overlap: [%v,%v) and [%v,%v)",
				records[i-1].ServiceStart, records[i-1].ServiceEnd,
				records[i].ServiceStart, records[i].ServiceEnd)
		}
	}
}

func TestRunSimulationDeterministic(t *testing.T) {
	config := DefaultConfig()
	config.RandomSeed = 77
	config.StartTime = testStart()

	first, err := RunSimulation(config)
	require.NoError(t, err)
	second, err := RunSimulation(config)
	require.NoError(t, err)

	require.Equal(t, first.Records, second.Records)
	require.Equal(t, first.QueueLengths, second.QueueLengths)
}

func TestRunSimulationEmpty(t *testing.T) {
	config := DefaultConfig()
	config.NumHours = 0
	config.RandomSeed = 1

	result, err := RunSimulation(config)
	require.NoError(t, err)
	require.Empty(t, result.Records)
	require.Empty(t, result.QueueLengths)

	_, err = GetStatistics(result)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestRunSimulationValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimConfig)
	}{
		{"zero arrival rate", func(c *SimConfig) { c.AvgArrivalRate = 0 }},
		{"negative arrival rate", func(c *SimConfig) { c.AvgArrivalRate = -1 }},
		{"zero service rate", func(c *SimConfig) { c.AvgServiceRate = 0 }},
		{"negative hours", func(c *SimConfig) { c.NumHours = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)
			_, err := RunSimulation(config)
			require.Error(t, err)
		})
	}
}

func TestQueueLengthCountsWaitingArrivals(t *testing.T) {
	// Back-to-back arrivals with a long first service: by the time patient 1
	// enters service at +30, patients 2..4 (arrived by +3) are all waiting.
	result, err := Simulate(fixedArrivals(0, 1, 2, 3), []int{30, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 0}, result.QueueLengths)
}

func TestSimulateDurationMismatch(t *testing.T) {
	_, err := Simulate(fixedArrivals(0, 5, 6), []int{10, 3})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duration")

	// A surplus of durations is harmless; only the first len(arrivals) are used.
	result, err := Simulate(fixedArrivals(0), []int{10, 3})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
}
