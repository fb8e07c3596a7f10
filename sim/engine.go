// sim/engine.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/coresim/sim/trace"
)

// NoJob is returned as the job number when a core is left idle.
const NoJob = -1

// Engine is the scheduling decision core. It owns the core slots, the wait queue
// and every active Job, and is advanced by one event call at a time in
// non-decreasing simulated time.
type Engine struct {
	scheme Scheme
	// cores[i] is the job running on core i, or nil when idle. Fixed length.
	cores []*Job
	// waitQ holds every active job that is not on a core
	waitQ *WaitQueue
	// active jobs by number, whether running or queued
	jobs    map[int]*Job
	metrics *Metrics
	clock   int64
	started bool

	// Trace records every decision when non-nil.
	Trace *trace.SimulationTrace
}

// NewEngine allocates cores empty core slots and an empty wait queue ordered by scheme.
func NewEngine(cores int, scheme Scheme) (*Engine, error) {
	if cores <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCores, cores)
	}
	if _, ok := schemeNames[scheme]; !ok {
		return nil, fmt.Errorf("unknown scheme %d", int(scheme))
	}
	logrus.Debugf("Starting engine with %d cores, scheme=%s", cores, scheme)
	return &Engine{
		scheme:  scheme,
		cores:   make([]*Job, cores),
		waitQ:   NewWaitQueue(scheme),
		jobs:    make(map[int]*Job),
		metrics: NewMetrics(),
		started: true,
	}, nil
}

// Scheme returns the discipline the engine was started with.
func (e *Engine) Scheme() Scheme {
	return e.scheme
}

// NumCores returns the fixed number of core slots.
func (e *Engine) NumCores() int {
	return len(e.cores)
}

// Clock returns the time of the latest event seen.
func (e *Engine) Clock() int64 {
	return e.clock
}

// JobArrived admits a new job at time. It returns the core the job should run on
// and true, or false when no scheduling change is needed. When the returned core
// was busy, the job that ran there has been preempted back into the wait queue.
func (e *Engine) JobArrived(number int, time, runTime int64, priority int) (int, bool, error) {
	if err := e.checkClock(time); err != nil {
		return NoCore, false, err
	}
	if runTime <= 0 {
		return NoCore, false, fmt.Errorf("job %d: %w, got %d", number, ErrInvalidRunTime, runTime)
	}
	if _, dup := e.jobs[number]; dup {
		return NoCore, false, fmt.Errorf("job %d: %w", number, ErrDuplicateJob)
	}
	e.clock = time

	j := newJob(number, time, runTime, priority)
	e.jobs[number] = j
	rec := trace.ArrivalRecord{JobNumber: number, Clock: time, RunTime: runTime, Priority: priority, Core: NoCore}

	if core := e.idleCore(); core != NoCore {
		e.install(j, core, time)
		logrus.Debugf("[t=%d] job %d arrived, placed on idle core %d", time, number, core)
		rec.Core, rec.Scheduled = core, true
		e.recordArrival(rec)
		return core, true, nil
	}

	if e.scheme.Preemptive() {
		if core, victim := e.selectVictim(j, time); victim != nil {
			e.evict(core, time)
			e.install(j, core, time)
			logrus.Debugf("[t=%d] job %d arrived, preempted job %d on core %d", time, number, victim.Number, core)
			rec.Core, rec.Scheduled = core, true
			rec.Preempted, rec.Preemption = victim.Number, true
			e.recordArrival(rec)
			return core, true, nil
		}
	}

	rec.Position = e.waitQ.Offer(j)
	logrus.Debugf("[t=%d] job %d arrived, queued at position %d", time, number, rec.Position)
	e.recordArrival(rec)
	return NoCore, false, nil
}

// selectVictim picks the single most vulnerable running job and returns it with
// its core if the arriving job j should preempt it. Under PSJF every running job
// is charged for the time elapsed since it was last scheduled first.
func (e *Engine) selectVictim(j *Job, time int64) (int, *Job) {
	if e.scheme == PSJF {
		for _, running := range e.cores {
			if running != nil {
				running.advance(time)
			}
		}
	}

	victimCore := NoCore
	var victim *Job
	for core, running := range e.cores {
		if running == nil {
			continue
		}
		if victim == nil || e.scheme.moreVulnerable(running, victim) {
			victimCore, victim = core, running
		}
	}
	if victim == nil || !e.scheme.preempts(j, victim, time) {
		return NoCore, nil
	}
	return victimCore, victim
}

// evict moves the job on core back into the wait queue.
func (e *Engine) evict(core int, time int64) {
	victim := e.cores[core]
	e.cores[core] = nil
	victim.advance(time)
	victim.preempt(time)
	e.waitQ.Offer(victim)
}

// JobFinished retires the job running on core and folds its statistics into the
// metrics. It returns the job installed on the freed core and true, or NoJob and
// false when the core goes idle.
func (e *Engine) JobFinished(core, number int, time int64) (int, bool, error) {
	if err := e.checkClock(time); err != nil {
		return NoJob, false, err
	}
	if err := e.checkCore(core); err != nil {
		return NoJob, false, err
	}
	j := e.cores[core]
	if j == nil {
		return NoJob, false, fmt.Errorf("core %d finishing job %d: %w", core, number, ErrCoreIdle)
	}
	if j.Number != number {
		return NoJob, false, fmt.Errorf("core %d runs job %d, not %d: %w", core, j.Number, number, ErrJobMismatch)
	}
	e.clock = time

	turnaround := time - j.ArrivalTime
	wait := turnaround - j.RunTime
	e.metrics.Record(wait, turnaround, j.ResponseTime)

	e.cores[core] = nil
	delete(e.jobs, number)
	j.Core = NoCore
	j.RemainingTime = 0
	j.State = StateFinished
	logrus.Debugf("[t=%d] job %d finished on core %d (wait=%d, turnaround=%d, response=%d)",
		time, number, core, wait, turnaround, j.ResponseTime)

	rec := trace.CompletionRecord{
		JobNumber:   number,
		Core:        core,
		Clock:       time,
		ArrivalTime: j.ArrivalTime,
		RunTime:     j.RunTime,
		Priority:    j.Priority,
		Wait:        wait,
		Turnaround:  turnaround,
		Response:    j.ResponseTime,
		NextJob:     NoJob,
	}
	next, ok := e.scheduleNext(core, time)
	rec.NextJob, rec.NextScheduled = next, ok
	if e.Trace != nil {
		e.Trace.RecordCompletion(rec)
	}
	return next, ok, nil
}

// QuantumExpired rotates the job on core to the tail of the wait queue and
// installs the queue's front job. Only valid under RR. The rotated job's
// RemainingTime is left as is; only preemptive schemes track it. It returns
// NoJob and false when the core goes idle.
func (e *Engine) QuantumExpired(core int, time int64) (int, bool, error) {
	if err := e.checkClock(time); err != nil {
		return NoJob, false, err
	}
	if e.scheme != RR {
		return NoJob, false, fmt.Errorf("scheme %s: %w", e.scheme, ErrNotRoundRobin)
	}
	if err := e.checkCore(core); err != nil {
		return NoJob, false, err
	}
	e.clock = time

	rec := trace.QuantumRecord{Core: core, Clock: time, Expired: NoJob}
	if j := e.cores[core]; j != nil {
		e.cores[core] = nil
		j.rotate()
		e.waitQ.Offer(j)
		rec.Expired, rec.HadJob = j.Number, true
		logrus.Debugf("[t=%d] quantum expired on core %d, job %d rotated", time, core, j.Number)
	}

	next, ok := e.scheduleNext(core, time)
	rec.NextJob, rec.NextScheduled = next, ok
	if e.Trace != nil {
		e.Trace.RecordQuantum(rec)
	}
	return next, ok, nil
}

// scheduleNext installs the front of the wait queue on the idle core.
func (e *Engine) scheduleNext(core int, time int64) (int, bool) {
	next := e.waitQ.Poll()
	if next == nil {
		logrus.Debugf("[t=%d] core %d idle", time, core)
		return NoJob, false
	}
	e.install(next, core, time)
	logrus.Debugf("[t=%d] job %d scheduled on core %d", time, next.Number, core)
	return next.Number, true
}

func (e *Engine) install(j *Job, core int, time int64) {
	e.cores[core] = j
	j.place(core, time)
}

// idleCore returns the lowest-indexed empty core, or NoCore.
func (e *Engine) idleCore() int {
	for core, j := range e.cores {
		if j == nil {
			return core
		}
	}
	return NoCore
}

func (e *Engine) checkCore(core int) error {
	if core < 0 || core >= len(e.cores) {
		return fmt.Errorf("core %d with %d cores: %w", core, len(e.cores), ErrInvalidCore)
	}
	return nil
}

// checkClock rejects calls on a stopped engine and times before the clock.
// Callers move the clock only once every other check has passed.
func (e *Engine) checkClock(time int64) error {
	if e == nil || !e.started {
		return ErrNotStarted
	}
	if time < e.clock {
		return fmt.Errorf("time %d after %d: %w", time, e.clock, ErrTimeRegression)
	}
	return nil
}

func (e *Engine) recordArrival(rec trace.ArrivalRecord) {
	if e.Trace != nil {
		e.Trace.RecordArrival(rec)
	}
}

// AverageWaitingTime returns the mean waiting time of all completed jobs.
func (e *Engine) AverageWaitingTime() (float64, error) {
	if e == nil || !e.started {
		return 0, ErrNotStarted
	}
	return e.metrics.AverageWait()
}

// AverageTurnaroundTime returns the mean turnaround time of all completed jobs.
func (e *Engine) AverageTurnaroundTime() (float64, error) {
	if e == nil || !e.started {
		return 0, ErrNotStarted
	}
	return e.metrics.AverageTurnaround()
}

// AverageResponseTime returns the mean response time of all completed jobs.
func (e *Engine) AverageResponseTime() (float64, error) {
	if e == nil || !e.started {
		return 0, ErrNotStarted
	}
	return e.metrics.AverageResponse()
}

// RunningOn returns the number of the job on core, or NoJob when the core is
// idle, out of range or the engine is stopped.
func (e *Engine) RunningOn(core int) int {
	if e == nil || !e.started || core < 0 || core >= len(e.cores) || e.cores[core] == nil {
		return NoJob
	}
	return e.cores[core].Number
}

// Metrics returns a copy of the accumulated statistics.
func (e *Engine) Metrics() Metrics {
	if e == nil || e.metrics == nil {
		return Metrics{}
	}
	return *e.metrics
}

// CleanUp releases every engine-owned job, core slot and queue entry.
// Any later call returns ErrNotStarted.
func (e *Engine) CleanUp() {
	if e == nil {
		return
	}
	logrus.Debugf("Cleaning up engine: %d active jobs dropped", len(e.jobs))
	for i := range e.cores {
		e.cores[i] = nil
	}
	e.cores = nil
	e.waitQ = nil
	e.jobs = nil
	e.metrics = nil
	e.started = false
}
