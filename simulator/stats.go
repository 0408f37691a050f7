package simulator

// StatisticsSummary aggregates a completed simulation run.
type StatisticsSummary struct {
	PatientCount      int     `json:"patientCount"`
	AvgWaitMinutes    float64 `json:"avgWaitMinutes"`
	MaxWaitMinutes    float64 `json:"maxWaitMinutes"`
	AvgServiceMinutes float64 `json:"avgServiceMinutes"`
	AvgQueueLength    float64 `json:"avgQueueLength"`
	MaxQueueLength    int     `json:"maxQueueLength"`
	ThroughputPerHour float64 `json:"throughputPerHour"` // Completed patients per simulated hour
}

// GetStatistics computes summary statistics for a batch result, including
// the queue-length series. Returns ErrInsufficientData when the run produced
// no records (e.g. numHours=0 or all-zero arrival counts).
func GetStatistics(result *SimulationResult) (*StatisticsSummary, error) {
	if result == nil || len(result.Records) == 0 {
		return nil, ErrInsufficientData
	}
	summary, err := SummarizeRecords(result.Records)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, q := range result.QueueLengths {
		total += q
		if q > summary.MaxQueueLength {
			summary.MaxQueueLength = q
		}
	}
	if len(result.QueueLengths) > 0 {
		summary.AvgQueueLength = float64(total) / float64(len(result.QueueLengths))
	}
	return summary, nil
}

// SummarizeRecords computes wait and service statistics from completed
// service records alone (no queue-length series), which is what the live
// scheduler can provide. Returns ErrInsufficientData on an empty set.
func SummarizeRecords(records []ServiceRecord) (*StatisticsSummary, error) {
	if len(records) == 0 {
		return nil, ErrInsufficientData
	}

	summary := &StatisticsSummary{PatientCount: len(records)}
	waitSum := 0.0
	serviceSum := 0
	firstArrival := records[0].ArrivalTime
	lastEnd := records[0].ServiceEnd
	for _, rec := range records {
		w := rec.WaitMinutes()
		waitSum += w
		if w > summary.MaxWaitMinutes {
			summary.MaxWaitMinutes = w
		}
		serviceSum += rec.ServiceMinutes
		if rec.ArrivalTime.Before(firstArrival) {
			firstArrival = rec.ArrivalTime
		}
		if rec.ServiceEnd.After(lastEnd) {
			lastEnd = rec.ServiceEnd
		}
	}

	n := float64(len(records))
	summary.AvgWaitMinutes = waitSum / n
	summary.AvgServiceMinutes = float64(serviceSum) / n

	if span := lastEnd.Sub(firstArrival); span > 0 {
		summary.ThroughputPerHour = n / span.Hours()
	}
	return summary, nil
}
