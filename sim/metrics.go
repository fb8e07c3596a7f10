// Tracks simulation-wide timing statistics: waiting, turnaround and response time.

package sim

import (
	"fmt"
	"io"
)

// Metrics accumulates per-job timing statistics.
// Each job is folded in exactly once, at its completion.
type Metrics struct {
	CompletedJobs   int   // Number of jobs completed
	TotalWait       int64 // Sum of (completion - arrival - run time)
	TotalTurnaround int64 // Sum of (completion - arrival)
	TotalResponse   int64 // Sum of (first run - arrival)
}

// NewMetrics returns a zeroed accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record folds one completed job into the running sums.
func (m *Metrics) Record(wait, turnaround, response int64) {
	m.TotalWait += wait
	m.TotalTurnaround += turnaround
	m.TotalResponse += response
	m.CompletedJobs++
}

func (m *Metrics) average(sum int64) (float64, error) {
	if m.CompletedJobs == 0 {
		return 0, ErrNoCompletedJobs
	}
	return float64(sum) / float64(m.CompletedJobs), nil
}

// AverageWait returns the mean waiting time over completed jobs.
func (m *Metrics) AverageWait() (float64, error) {
	return m.average(m.TotalWait)
}

// AverageTurnaround returns the mean turnaround time over completed jobs.
func (m *Metrics) AverageTurnaround() (float64, error) {
	return m.average(m.TotalTurnaround)
}

// AverageResponse returns the mean response time over completed jobs.
func (m *Metrics) AverageResponse() (float64, error) {
	return m.average(m.TotalResponse)
}

// Print writes the three averages in the classic scheduler report format.
// With no completed jobs only the count is written.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Completed Jobs           : %d\n", m.CompletedJobs)
	if m.CompletedJobs == 0 {
		return
	}
	wait, _ := m.AverageWait()
	turnaround, _ := m.AverageTurnaround()
	response, _ := m.AverageResponse()
	fmt.Fprintf(w, "Average waiting time     : %.2f\n", wait)
	fmt.Fprintf(w, "Average turnaround time  : %.2f\n", turnaround)
	fmt.Fprintf(w, "Average response time    : %.2f\n", response)
}
