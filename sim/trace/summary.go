package trace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TimingSummary describes the distribution of one per-job timing statistic.
type TimingSummary struct {
	Mean float64
	P50  float64
	P90  float64
	Max  float64
}

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalArrivals   int
	ImmediateStarts int // arrivals placed on a core right away
	Queued          int // arrivals that went to the wait queue
	Preemptions     int
	Completions     int
	QuantumExpiries int
	IdleTransitions int         // completions or expiries that left a core idle
	CoreCompletions map[int]int // core index → jobs completed there
	Wait            TimingSummary
	Turnaround      TimingSummary
	Response        TimingSummary
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CoreCompletions: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalArrivals = len(st.Arrivals)
	for _, a := range st.Arrivals {
		if !a.Scheduled {
			summary.Queued++
			continue
		}
		summary.ImmediateStarts++
		if a.Preemption {
			summary.Preemptions++
		}
	}

	summary.Completions = len(st.Completions)
	waits := make([]float64, 0, len(st.Completions))
	turnarounds := make([]float64, 0, len(st.Completions))
	responses := make([]float64, 0, len(st.Completions))
	for _, c := range st.Completions {
		summary.CoreCompletions[c.Core]++
		if !c.NextScheduled {
			summary.IdleTransitions++
		}
		waits = append(waits, float64(c.Wait))
		turnarounds = append(turnarounds, float64(c.Turnaround))
		responses = append(responses, float64(c.Response))
	}

	summary.QuantumExpiries = len(st.Quanta)
	for _, q := range st.Quanta {
		if !q.NextScheduled {
			summary.IdleTransitions++
		}
	}

	summary.Wait = summarizeTimings(waits)
	summary.Turnaround = summarizeTimings(turnarounds)
	summary.Response = summarizeTimings(responses)
	return summary
}

// summarizeTimings sorts values in place; stat.Quantile requires sorted input.
func summarizeTimings(values []float64) TimingSummary {
	if len(values) == 0 {
		return TimingSummary{}
	}
	sort.Float64s(values)
	return TimingSummary{
		Mean: stat.Mean(values, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, values, nil),
		Max:  values[len(values)-1],
	}
}
