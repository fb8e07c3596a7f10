// Package workload loads job lists for the scheduling simulator.
//
// Two formats are accepted. CSV files hold one job per line as
// "arrival_time,running_time,priority", with job numbers assigned from 0 in
// file order; blank lines, '#' comments and a non-numeric header row are
// skipped. YAML files hold a "jobs" list whose entries may carry an explicit
// number.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// JobSpec describes one job to be replayed.
type JobSpec struct {
	Number   int
	Arrival  int64
	RunTime  int64
	Priority int
}

// csvColumns is the column order of the CSV job format.
var csvColumns = []string{"arrival_time", "running_time", "priority"}

// ParseJobsCSV reads a CSV job list.
func ParseJobsCSV(r io.Reader) ([]JobSpec, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var jobs []JobSpec
	for row := 0; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading job csv: %w", err)
		}
		if len(fields) != len(csvColumns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields (%s), got %d",
				line, len(csvColumns), strings.Join(csvColumns, ","), len(fields))
		}
		if row == 0 && isHeader(fields) {
			continue
		}
		job, err := parseCSVRecord(fields, len(jobs))
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		jobs = append(jobs, job)
	}
	return finalize(jobs)
}

func isHeader(fields []string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	return err != nil
}

func parseCSVRecord(fields []string, number int) (JobSpec, error) {
	arrival, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return JobSpec{}, fmt.Errorf("parsing %s: %w", csvColumns[0], err)
	}
	run, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return JobSpec{}, fmt.Errorf("parsing %s: %w", csvColumns[1], err)
	}
	priority, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return JobSpec{}, fmt.Errorf("parsing %s: %w", csvColumns[2], err)
	}
	return JobSpec{Number: number, Arrival: arrival, RunTime: run, Priority: priority}, nil
}

// yamlJobList is the on-disk YAML layout.
type yamlJobList struct {
	Jobs []struct {
		Number   *int  `yaml:"number"`
		Arrival  int64 `yaml:"arrival"`
		Run      int64 `yaml:"run"`
		Priority int   `yaml:"priority"`
	} `yaml:"jobs"`
}

// ParseJobsYAML reads a YAML job list. Entries without a number get their
// zero-based position in the list.
func ParseJobsYAML(r io.Reader) ([]JobSpec, error) {
	var list yamlJobList
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing job yaml: %w", err)
	}
	jobs := make([]JobSpec, 0, len(list.Jobs))
	for i, j := range list.Jobs {
		number := i
		if j.Number != nil {
			number = *j.Number
		}
		jobs = append(jobs, JobSpec{Number: number, Arrival: j.Arrival, RunTime: j.Run, Priority: j.Priority})
	}
	return finalize(jobs)
}

// WriteJobsCSV writes jobs in the CSV job format, header first. Job numbers are
// not written; ParseJobsCSV reassigns them by row.
func WriteJobsCSV(w io.Writer, jobs []JobSpec) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, j := range jobs {
		row := []string{
			strconv.FormatInt(j.Arrival, 10),
			strconv.FormatInt(j.RunTime, 10),
			strconv.Itoa(j.Priority),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadJobs reads a job list from path, choosing the format by extension:
// .yaml and .yml are YAML, anything else is CSV.
func LoadJobs(path string) ([]JobSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening job list: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseJobsYAML(f)
	default:
		return ParseJobsCSV(f)
	}
}

// finalize validates jobs and returns them sorted by arrival, keeping file
// order among jobs that arrive together.
func finalize(jobs []JobSpec) ([]JobSpec, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("empty job list")
	}
	seen := make(map[int]bool, len(jobs))
	for _, j := range jobs {
		if j.Arrival < 0 {
			return nil, fmt.Errorf("job %d: arrival time must be non-negative, got %d", j.Number, j.Arrival)
		}
		if j.RunTime <= 0 {
			return nil, fmt.Errorf("job %d: running time must be positive, got %d", j.Number, j.RunTime)
		}
		if seen[j.Number] {
			return nil, fmt.Errorf("duplicate job number %d", j.Number)
		}
		seen[j.Number] = true
	}
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].Arrival < jobs[b].Arrival
	})
	return jobs, nil
}
