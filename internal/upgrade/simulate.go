package upgrade

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// Bounds of a single Monte Carlo run. Each trial loops up to guarantee times,
// so both are capped.
const (
	MaxSimulationTrials    = 1_000_000
	MaxSimulationGuarantee = 1_000
)

// cancelCheckInterval is how many trials run between context checks
const cancelCheckInterval = 1024

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewSeededRNG returns a reproducible PCG source
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewRNG returns a source seeded from the runtime's random generator
func NewRNG() RandomSource {
	return NewSeededRNG(rand.Uint64())
}

// Attempt counts attempts until one succeeds, forcing success on attempt number guarantee
func Attempt(p float64, guarantee int, rng RandomSource) int {
	if guarantee < 1 {
		guarantee = 1
	}
	for n := 1; ; n++ {
		if n >= guarantee || rng.Float64() < p {
			return n
		}
	}
}

// Simulate runs trials independent upgrades and summarizes the attempt counts.
// The result also carries the closed-form ExpectedAttempts for comparison.
// It stops early with ctx's error when ctx is cancelled.
func Simulate(ctx context.Context, p float64, guarantee, trials int, rng RandomSource) (domain.SimulationStats, error) {
	if trials < 1 || trials > MaxSimulationTrials {
		return domain.SimulationStats{}, fmt.Errorf("%w: trials must be in 1..%d, got %d", domain.ErrInvalidInput, MaxSimulationTrials, trials)
	}
	if !(p > 0 && p <= 1) {
		return domain.SimulationStats{}, fmt.Errorf("%w: probability must be in (0,1], got %v", domain.ErrInvalidInput, p)
	}
	if guarantee < 1 || guarantee > MaxSimulationGuarantee {
		return domain.SimulationStats{}, fmt.Errorf("%w: guarantee must be in 1..%d, got %d", domain.ErrInvalidInput, MaxSimulationGuarantee, guarantee)
	}
	if rng == nil {
		rng = NewRNG()
	}

	samples := make([]int, trials)
	for i := range samples {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return domain.SimulationStats{}, err
			}
		}
		samples[i] = Attempt(p, guarantee, rng)
	}

	stats := calcStats(samples)
	stats.Expected = ExpectedAttempts(p, guarantee)
	return stats, nil
}

// calcStats computes mean, population variance and interpolated percentiles
func calcStats(xs []int) domain.SimulationStats {
	n := len(xs)
	if n == 0 {
		return domain.SimulationStats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(sorted[n-1])
		}
		f := pos - float64(i)
		return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
	}

	return domain.SimulationStats{
		Trials:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		P50:      percentile(0.50),
		P90:      percentile(0.90),
		P99:      percentile(0.99),
	}
}
