package workload

import (
	"math/rand"
)

// ArrivalSampler generates inter-arrival times between consecutive jobs.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in ticks.
	// Always returns a non-negative value.
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed inter-arrival times (CV=1).
type PoissonSampler struct {
	rate float64 // jobs per tick
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	return int64(rng.ExpFloat64() / s.rate)
}

// ConstantSampler spaces arrivals evenly.
type ConstantSampler struct {
	interval int64
}

func (s *ConstantSampler) SampleIAT(_ *rand.Rand) int64 {
	return s.interval
}

// NewArrivalSampler creates an ArrivalSampler by process name.
// Valid names: "poisson" (default), "constant".
func NewArrivalSampler(process string, rate float64) (ArrivalSampler, error) {
	if rate <= 0 {
		return nil, errRate(rate)
	}
	switch process {
	case "", "poisson":
		return &PoissonSampler{rate: rate}, nil
	case "constant":
		interval := int64(1 / rate)
		return &ConstantSampler{interval: interval}, nil
	default:
		return nil, errProcess(process)
	}
}
