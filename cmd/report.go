package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/coresim/sim/driver"
	"github.com/inference-sim/coresim/sim/trace"
)

// printResult writes the run averages to w, preceded by a per-job table when perJob is set.
func printResult(w io.Writer, res *driver.Result, perJob bool) {
	if perJob {
		printJobTable(w, res)
	}
	_, _ = fmt.Fprintln(w, "=== Simulation Results ===")
	_, _ = fmt.Fprintf(w, "Scheme                   : %s\n", res.Scheme)
	_, _ = fmt.Fprintf(w, "Cores                    : %d\n", res.Cores)
	_, _ = fmt.Fprintf(w, "End Time                 : %d\n", res.EndTime)
	res.Metrics.Print(w)
}

// printJobTable renders one row per job, ordered by job number, with the
// averages in the footer.
func printJobTable(w io.Writer, res *driver.Result) {
	done := make([]trace.CompletionRecord, len(res.Completions))
	copy(done, res.Completions)
	sort.Slice(done, func(i, j int) bool { return done[i].JobNumber < done[j].JobNumber })

	rows := make([][]string, 0, len(done))
	for _, c := range done {
		rows = append(rows, []string{
			strconv.Itoa(c.JobNumber),
			strconv.Itoa(c.Core),
			strconv.FormatInt(c.ArrivalTime, 10),
			strconv.FormatInt(c.RunTime, 10),
			strconv.Itoa(c.Priority),
			strconv.FormatInt(c.Clock, 10),
			strconv.FormatInt(c.Response, 10),
			strconv.FormatInt(c.Wait, 10),
			strconv.FormatInt(c.Turnaround, 10),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job", "Core", "Arrival", "Run", "Priority", "Finish", "Response", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageResponse),
		fmt.Sprintf("Average\n%.2f", res.AverageWait),
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround)})
	table.Render()
}

// printTraceSummary writes decision counts and timing percentiles.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "=== Decision Trace Summary ===")
	_, _ = fmt.Fprintf(w, "Arrivals                 : %d (%d started, %d queued)\n", s.TotalArrivals, s.ImmediateStarts, s.Queued)
	_, _ = fmt.Fprintf(w, "Preemptions              : %d\n", s.Preemptions)
	_, _ = fmt.Fprintf(w, "Completions              : %d\n", s.Completions)
	_, _ = fmt.Fprintf(w, "Quantum expiries         : %d\n", s.QuantumExpiries)
	_, _ = fmt.Fprintf(w, "Idle transitions         : %d\n", s.IdleTransitions)

	cores := make([]int, 0, len(s.CoreCompletions))
	for core := range s.CoreCompletions {
		cores = append(cores, core)
	}
	sort.Ints(cores)
	for _, core := range cores {
		_, _ = fmt.Fprintf(w, "  core %-3d completions  : %d\n", core, s.CoreCompletions[core])
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Mean", "P50", "P90", "Max"})
	for _, row := range []struct {
		name string
		t    trace.TimingSummary
	}{
		{"wait", s.Wait},
		{"turnaround", s.Turnaround},
		{"response", s.Response},
	} {
		table.Append([]string{row.name,
			strconv.FormatFloat(row.t.Mean, 'f', 2, 64),
			strconv.FormatFloat(row.t.P50, 'f', 2, 64),
			strconv.FormatFloat(row.t.P90, 'f', 2, 64),
			strconv.FormatFloat(row.t.Max, 'f', 2, 64),
		})
	}
	table.Render()
}
