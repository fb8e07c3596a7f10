package workload

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMean(s RunTimeSampler, n int) float64 {
	rng := rand.New(rand.NewSource(42))
	var sum int64
	for i := 0; i < n; i++ {
		sum += s.Sample(rng)
	}
	return float64(sum) / float64(n)
}

func TestUniformSampler_CoversRangeInclusive(t *testing.T) {
	s, err := NewRunTimeSampler("", 0, 0, 2, 4)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		v := s.Sample(rng)
		require.GreaterOrEqual(t, v, int64(2))
		require.LessOrEqual(t, v, int64(4))
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestGaussianSampler_MeanMatchesParam(t *testing.T) {
	s, err := NewRunTimeSampler("gaussian", 50, 10, 1, 1000)
	require.NoError(t, err)

	mean := sampleMean(s, 10000)
	assert.Less(t, math.Abs(mean-50)/50, 0.05, "gaussian mean = %.1f, want ≈ 50", mean)
}

func TestGaussianSampler_ClampedToRange(t *testing.T) {
	s, err := NewRunTimeSampler("gaussian", 50, 500, 10, 90)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		v := s.Sample(rng)
		if v < 10 || v > 90 {
			t.Fatalf("sample %d: %d outside [10, 90]", i, v)
		}
	}
}

func TestExponentialSampler_MeanMatchesParam(t *testing.T) {
	s, err := NewRunTimeSampler("exponential", 20, 0, 1, 100000)
	require.NoError(t, err)

	mean := sampleMean(s, 10000)
	assert.Less(t, math.Abs(mean-20)/20, 0.1, "exponential mean = %.1f, want ≈ 20", mean)
}

func TestNewRunTimeSampler_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		dist     string
		mean, sd float64
		min, max int64
	}{
		{"zero min", "uniform", 0, 0, 0, 5},
		{"inverted range", "uniform", 0, 0, 5, 2},
		{"gaussian without mean", "gaussian", 0, 1, 1, 5},
		{"gaussian negative stddev", "gaussian", 3, -1, 1, 5},
		{"exponential without mean", "exponential", 0, 0, 1, 5},
		{"unknown", "weibull", 1, 1, 1, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRunTimeSampler(tc.dist, tc.mean, tc.sd, tc.min, tc.max)
			assert.Error(t, err)
		})
	}
}
