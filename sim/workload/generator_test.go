package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SameSeed_IdenticalJobs(t *testing.T) {
	cfg := GeneratorConfig{Count: 50, Rate: 0.25, MinRun: 1, MaxRun: 20, MinPriority: 0, MaxPriority: 5, Seed: 42}

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_RespectsRangesAndOrdering(t *testing.T) {
	cfg := GeneratorConfig{Count: 200, Rate: 0.5, MinRun: 3, MaxRun: 7, MinPriority: -1, MaxPriority: 2, Seed: 7}

	jobs, err := Generate(cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 200)
	assert.Equal(t, int64(0), jobs[0].Arrival)
	for i, j := range jobs {
		assert.Equal(t, i, j.Number)
		assert.GreaterOrEqual(t, j.RunTime, int64(3))
		assert.LessOrEqual(t, j.RunTime, int64(7))
		assert.GreaterOrEqual(t, j.Priority, -1)
		assert.LessOrEqual(t, j.Priority, 2)
		if i > 0 {
			assert.GreaterOrEqual(t, j.Arrival, jobs[i-1].Arrival)
		}
	}
}

func TestGenerate_ConstantProcess_EvenSpacing(t *testing.T) {
	jobs, err := Generate(GeneratorConfig{Count: 4, Process: "constant", Rate: 0.5, MinRun: 2, MaxRun: 2, Seed: 1})
	require.NoError(t, err)
	arrivals := []int64{jobs[0].Arrival, jobs[1].Arrival, jobs[2].Arrival, jobs[3].Arrival}
	assert.Equal(t, []int64{0, 2, 4, 6}, arrivals)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	base := GeneratorConfig{Count: 1, Rate: 1, MinRun: 1, MaxRun: 1}
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
	}{
		{"zero count", func(c *GeneratorConfig) { c.Count = 0 }},
		{"zero rate", func(c *GeneratorConfig) { c.Rate = 0 }},
		{"zero min run", func(c *GeneratorConfig) { c.MinRun = 0 }},
		{"inverted run range", func(c *GeneratorConfig) { c.MinRun, c.MaxRun = 5, 2 }},
		{"inverted priority range", func(c *GeneratorConfig) { c.MinPriority, c.MaxPriority = 3, 1 }},
		{"unknown process", func(c *GeneratorConfig) { c.Process = "gamma" }},
		{"unknown run distribution", func(c *GeneratorConfig) { c.RunDist = "weibull" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			_, err := Generate(cfg)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_PriorityRangeDoesNotShiftArrivalsOrRunTimes(t *testing.T) {
	// GIVEN two configs that differ only in priority range
	narrow := GeneratorConfig{Count: 30, Rate: 0.4, MinRun: 1, MaxRun: 9, MaxPriority: 1, Seed: 5}
	wide := narrow
	wide.MinPriority, wide.MaxPriority = -10, 10

	a, err := Generate(narrow)
	require.NoError(t, err)
	b, err := Generate(wide)
	require.NoError(t, err)

	// THEN arrivals and run times are identical
	for i := range a {
		assert.Equal(t, a[i].Arrival, b[i].Arrival, "job %d arrival", i)
		assert.Equal(t, a[i].RunTime, b[i].RunTime, "job %d run", i)
	}
}

func TestGenerate_ExponentialRunTimes_StayInRange(t *testing.T) {
	jobs, err := Generate(GeneratorConfig{
		Count: 100, Rate: 1, MinRun: 2, MaxRun: 40, RunDist: "exponential", RunMean: 6, Seed: 11,
	})
	require.NoError(t, err)
	for _, j := range jobs {
		assert.GreaterOrEqual(t, j.RunTime, int64(2))
		assert.LessOrEqual(t, j.RunTime, int64(40))
	}
}
