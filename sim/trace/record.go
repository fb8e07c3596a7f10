// Package trace provides decision-trace recording for scheduling analysis.
// This package has no dependencies on sim/ or sim/driver/; it stores pure data types.
package trace

// ArrivalRecord captures a single job_arrived decision.
type ArrivalRecord struct {
	JobNumber int
	Clock     int64
	RunTime   int64
	Priority  int
	Core      int  // core the job was placed on; meaningful only when Scheduled
	Scheduled bool // false means the job was queued
	Position  int  // queue position when not scheduled
	Preempted int  // job evicted from Core; meaningful only when Preemption
	// Preemption is true when the arrival evicted a running job.
	Preemption bool
}

// CompletionRecord captures a single job_finished decision with the departing
// job's final timing statistics.
type CompletionRecord struct {
	JobNumber     int
	Core          int
	Clock         int64
	ArrivalTime   int64
	RunTime       int64
	Priority      int
	Wait          int64
	Turnaround    int64
	Response      int64
	NextJob       int  // job installed on Core; meaningful only when NextScheduled
	NextScheduled bool // false means the core went idle
}

// QuantumRecord captures a single quantum_expired decision.
type QuantumRecord struct {
	Core          int
	Clock         int64
	Expired       int // job rotated off the core; meaningful only when HadJob
	HadJob        bool
	NextJob       int  // job installed on Core; meaningful only when NextScheduled
	NextScheduled bool // false means the core went idle
}
