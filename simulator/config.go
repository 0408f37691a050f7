package simulator

import "time"

// SimConfig holds the parameters of a batch simulation run.
type SimConfig struct {
	AvgArrivalRate float64   `json:"avgArrivalRate" yaml:"avgArrivalRate"` // Mean patient arrivals per hour (Poisson lambda)
	AvgServiceRate float64   `json:"avgServiceRate" yaml:"avgServiceRate"` // Mean patients served per hour; mean service duration = 60/rate minutes
	NumHours       int       `json:"numHours" yaml:"numHours"`             // Simulated clinic hours (0 = empty run, valid)
	StartTime      time.Time `json:"startTime" yaml:"startTime"`           // First simulated hour (zero value = 08:00 today)
	RandomSeed     int64     `json:"randomSeed" yaml:"randomSeed"`         // Random seed for reproducibility (0 = use time-based seed)
}

// DefaultConfig returns a typical small-clinic day: five arrivals per hour
// against four services per hour (15 minute mean consult) over an 8-hour day.
func DefaultConfig() SimConfig {
	return SimConfig{
		AvgArrivalRate: 5.0,
		AvgServiceRate: 4.0,
		NumHours:       8,
		RandomSeed:     0,
	}
}

// Validate checks if configuration values are reasonable
func (c *SimConfig) Validate() error {
	if c.AvgArrivalRate <= 0 {
		return ErrInvalidParameter("avgArrivalRate must be > 0")
	}
	if c.AvgServiceRate <= 0 {
		return ErrInvalidParameter("avgServiceRate must be > 0")
	}
	if c.NumHours < 0 {
		return ErrInvalidParameter("numHours must be >= 0")
	}
	return nil
}

// EffectiveStart returns the configured start timestamp, defaulting to
// 08:00 local time today when unset.
func (c *SimConfig) EffectiveStart() time.Time {
	if !c.StartTime.IsZero() {
		return c.StartTime
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.Local)
}
