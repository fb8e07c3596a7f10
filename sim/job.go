// Defines the Job struct that models a single CPU-bound unit of work in the simulation.
// Tracks arrival, run length, remaining time under preemptive schemes, and response timing.

package sim

import (
	"fmt"
)

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StateUnscheduled JobState = "unscheduled" // waiting, never ran
	StateRunning     JobState = "running"     // first run on a core
	StatePreempted   JobState = "preempted"   // evicted by a more urgent arrival
	StateResumed     JobState = "resumed"     // running again after preemption or rotation
	StateRotated     JobState = "rotated"     // sent to the queue tail by a quantum expiry
	StateFinished    JobState = "finished"
)

// NoCore is the Core value of a job that is not on any core.
const NoCore = -1

// Job models one job's lifecycle inside the Engine.
// A job is owned by exactly one of {a core slot, the wait queue} between its
// arrival and its completion.
type Job struct {
	Number int // Caller-assigned, globally unique

	ArrivalTime   int64 // Simulated time at which the job arrived
	RunTime       int64 // Total run length
	RemainingTime int64 // Run left; only decremented under preemptive schemes
	Priority      int   // Lower value = more urgent

	State JobState
	Core  int // Core index while running, NoCore otherwise

	LastScheduled  int64 // Time the job most recently began or resumed on a core
	FirstScheduled int64 // Time of the first run; valid only when ResponseSet
	ResponseTime   int64 // FirstScheduled - ArrivalTime; valid only when ResponseSet
	ResponseSet    bool
}

func newJob(number int, arrival, runTime int64, priority int) *Job {
	return &Job{
		Number:        number,
		ArrivalTime:   arrival,
		RunTime:       runTime,
		RemainingTime: runTime,
		Priority:      priority,
		State:         StateUnscheduled,
		Core:          NoCore,
	}
}

// place stamps the job as running on core at time. The response time is set
// on the first placement only.
func (j *Job) place(core int, time int64) {
	j.Core = core
	j.LastScheduled = time
	if !j.ResponseSet {
		j.FirstScheduled = time
		j.ResponseTime = time - j.ArrivalTime
		j.ResponseSet = true
		j.State = StateRunning
		return
	}
	j.State = StateResumed
}

// preempt detaches the job from its core after an eviction. The response stamp
// is cleared when the job was first placed at exactly time, since it never
// actually executed.
func (j *Job) preempt(time int64) {
	j.Core = NoCore
	if j.ResponseSet && j.FirstScheduled == time {
		j.ResponseSet = false
		j.ResponseTime = 0
		j.FirstScheduled = 0
		j.State = StateUnscheduled
		return
	}
	j.State = StatePreempted
}

// rotate detaches the job from its core after its quantum expired.
func (j *Job) rotate() {
	j.Core = NoCore
	j.State = StateRotated
}

// advance charges the time elapsed since LastScheduled against RemainingTime
// and moves LastScheduled up to time.
func (j *Job) advance(time int64) {
	elapsed := time - j.LastScheduled
	if elapsed > 0 {
		j.RemainingTime -= elapsed
		if j.RemainingTime < 0 {
			j.RemainingTime = 0
		}
	}
	j.LastScheduled = time
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (Number: %d, State: %s, Core: %d, Arrival: %d, Run: %d, Remaining: %d, Priority: %d)",
		j.Number, j.State, j.Core, j.ArrivalTime, j.RunTime, j.RemainingTime, j.Priority)
}
