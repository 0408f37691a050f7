package simulator

import (
	"math"
	"math/rand"
)

// RandomSource wraps a seeded PRNG and provides every stochastic draw the
// simulation needs: Poisson arrival counts, Poisson service durations, and
// uniform within-hour arrival offsets. A single source is consumed across a
// run so that one seed reproduces the whole run.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a random source with a specific seed.
// Seed 0 means "use a random seed" (non-reproducible runs).
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Poisson draws a non-negative integer from a Poisson distribution with the
// given mean, using Knuth's product method: multiply uniforms until the
// product drops below exp(-mean).
func (r *RandomSource) Poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		k++
		p *= r.rng.Float64()
		if p <= limit {
			return k - 1
		}
	}
}

// MinuteOffset draws a uniform offset in [0, 60) minutes, used to place an
// arrival inside its hour.
func (r *RandomSource) MinuteOffset() float64 {
	return r.rng.Float64() * 60
}

// ArrivalCounts draws per-hour arrival counts for numHours hours from a
// Poisson distribution with mean arrivalRate (patients per hour).
// Validation happens before any draw so a bad parameter never consumes
// randomness.
func (r *RandomSource) ArrivalCounts(arrivalRate float64, numHours int) ([]int, error) {
	if arrivalRate <= 0 {
		return nil, ErrInvalidParameter("arrival rate must be > 0")
	}
	if numHours < 0 {
		return nil, ErrInvalidParameter("hour count must be >= 0")
	}
	counts := make([]int, numHours)
	for i := range counts {
		counts[i] = r.Poisson(arrivalRate)
	}
	return counts, nil
}

// ServiceMeanMinutes converts a per-hour service rate into the mean service
// duration in minutes: 60/rate, rounded to the nearest minute, floored at 1
// so that the distribution can never center on a zero-duration service.
func ServiceMeanMinutes(serviceRate float64) (float64, error) {
	if serviceRate <= 0 {
		return 0, ErrInvalidParameter("service rate must be > 0")
	}
	mean := math.Round(60 / serviceRate)
	if mean < 1 {
		mean = 1
	}
	return mean, nil
}

// ServiceDurations draws n service durations (whole minutes) from a Poisson
// distribution with mean 60/serviceRate.
func (r *RandomSource) ServiceDurations(serviceRate float64, n int) ([]int, error) {
	mean, err := ServiceMeanMinutes(serviceRate)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrInvalidParameter("sample count must be >= 0")
	}
	durations := make([]int, n)
	for i := range durations {
		durations[i] = r.serviceDraw(mean)
	}
	return durations, nil
}

// serviceDraw samples a single service duration. Draws are floored at one
// minute: a zero-duration service would produce an empty service window and
// break the single-server exclusivity invariant.
func (r *RandomSource) serviceDraw(mean float64) int {
	v := r.Poisson(mean)
	if v < 1 {
		v = 1
	}
	return v
}
