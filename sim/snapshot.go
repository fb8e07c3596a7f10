package sim

import (
	"fmt"
	"strings"
)

// JobView is a read-only copy of a Job's state.
type JobView struct {
	Number        int
	State         JobState
	Core          int
	ArrivalTime   int64
	RunTime       int64
	RemainingTime int64
	Priority      int
	LastScheduled int64
	ResponseTime  int64
	ResponseSet   bool
}

func viewOf(j *Job) JobView {
	return JobView{
		Number:        j.Number,
		State:         j.State,
		Core:          j.Core,
		ArrivalTime:   j.ArrivalTime,
		RunTime:       j.RunTime,
		RemainingTime: j.RemainingTime,
		Priority:      j.Priority,
		LastScheduled: j.LastScheduled,
		ResponseTime:  j.ResponseTime,
		ResponseSet:   j.ResponseSet,
	}
}

// CoreSnapshot describes one core slot.
type CoreSnapshot struct {
	ID   int
	Idle bool
	Job  JobView // zero value when Idle
}

// EngineSnapshot is a point-in-time copy of core occupancy and queue order.
// It shares no memory with the engine.
type EngineSnapshot struct {
	Clock  int64
	Scheme Scheme
	Cores  []CoreSnapshot
	Queue  []JobView // front first
}

// Snapshot returns the current core occupancy and queue contents without
// changing engine state. A stopped engine yields an empty snapshot.
func (e *Engine) Snapshot() EngineSnapshot {
	if e == nil || !e.started {
		return EngineSnapshot{}
	}
	snap := EngineSnapshot{
		Clock:  e.clock,
		Scheme: e.scheme,
		Cores:  make([]CoreSnapshot, len(e.cores)),
		Queue:  make([]JobView, 0, e.waitQ.Len()),
	}
	for id, j := range e.cores {
		snap.Cores[id] = CoreSnapshot{ID: id, Idle: j == nil}
		if j != nil {
			snap.Cores[id].Job = viewOf(j)
		}
	}
	for _, j := range e.waitQ.Items() {
		snap.Queue = append(snap.Queue, viewOf(j))
	}
	return snap
}

// ShowQueue renders running jobs by ascending core followed by queued jobs in
// scheduling order, each as "number(core)" with -1 for queued jobs,
// e.g. "4(0) 2(-1) 1(-1)".
func (e *Engine) ShowQueue() string {
	snap := e.Snapshot()
	parts := make([]string, 0, len(snap.Cores)+len(snap.Queue))
	for _, c := range snap.Cores {
		if !c.Idle {
			parts = append(parts, fmt.Sprintf("%d(%d)", c.Job.Number, c.ID))
		}
	}
	for _, j := range snap.Queue {
		parts = append(parts, fmt.Sprintf("%d(%d)", j.Number, NoCore))
	}
	return strings.Join(parts, " ")
}
