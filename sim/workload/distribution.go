package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// RunTimeSampler generates job running times.
type RunTimeSampler interface {
	// Sample returns a running time within the sampler's [min, max] range.
	Sample(rng *rand.Rand) int64
}

// UniformSampler draws running times uniformly from [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// GaussianSampler produces clamped Gaussian running times.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	return clampRound(val, s.min, s.max)
}

// ExponentialSampler produces exponentially-distributed running times, clamped
// to [min, max]. Most jobs are short with a long tail, which is where the
// shortest-job disciplines differ most from FCFS.
type ExponentialSampler struct {
	mean     float64
	min, max int64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	return clampRound(rng.ExpFloat64()*s.mean, s.min, s.max)
}

func clampRound(val float64, lo, hi int64) int64 {
	if math.IsNaN(val) {
		return lo
	}
	clamped := math.Min(float64(hi), math.Max(float64(lo), val))
	return int64(math.Round(clamped))
}

// NewRunTimeSampler creates a RunTimeSampler by distribution name.
// Valid names: "uniform" (default), "gaussian" (mean, stdDev), "exponential" (mean).
// Every sample is clamped to [min, max].
func NewRunTimeSampler(dist string, mean, stdDev float64, min, max int64) (RunTimeSampler, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("invalid run range [%d, %d]", min, max)
	}
	switch dist {
	case "", "uniform":
		return &UniformSampler{min: min, max: max}, nil
	case "gaussian":
		if mean <= 0 || stdDev < 0 {
			return nil, fmt.Errorf("gaussian run time requires mean > 0 and std dev >= 0, got %v, %v", mean, stdDev)
		}
		return &GaussianSampler{mean: mean, stdDev: stdDev, min: min, max: max}, nil
	case "exponential":
		if mean <= 0 {
			return nil, fmt.Errorf("exponential run time requires mean > 0, got %v", mean)
		}
		return &ExponentialSampler{mean: mean, min: min, max: max}, nil
	default:
		return nil, fmt.Errorf("unknown run time distribution %q", dist)
	}
}
