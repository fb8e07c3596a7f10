// Package driver replays a job list through a sim.Engine as a discrete-event
// simulation. It owns simulated time: arrivals come from the workload, and
// completions and quantum expiries are derived from each job's remaining run.
package driver

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/coresim/sim"
	"github.com/inference-sim/coresim/sim/trace"
	"github.com/inference-sim/coresim/sim/workload"
)

// Config describes a single run.
type Config struct {
	Cores  int
	Scheme sim.Scheme
	// Quantum is the round-robin time slice. Required positive under RR, ignored otherwise.
	Quantum    int64
	TraceLevel trace.TraceLevel
	// ShowQueue logs the engine's core and queue contents after every event.
	ShowQueue bool
}

// Result is the outcome of a completed run.
type Result struct {
	Scheme    sim.Scheme
	Cores     int
	Completed int
	EndTime   int64

	AverageWait       float64
	AverageTurnaround float64
	AverageResponse   float64
	Metrics           sim.Metrics

	// Completions in finish order.
	Completions []trace.CompletionRecord
	// Trace holds every engine decision; nil unless TraceLevel is decisions.
	Trace *trace.SimulationTrace
}

// coreState mirrors what the engine placed on a core. gen is bumped on every
// install and vacate so that finish and quantum events armed for an earlier
// occupant can be recognised and dropped.
type coreState struct {
	job   int
	busy  bool
	since int64
	gen   uint64
}

// Driver runs jobs through an engine.
type Driver struct {
	cfg Config

	clock     int64
	engine    *sim.Engine
	events    *EventHeap
	cores     []coreState
	remaining map[int]int64
	seq       uint64
}

// New validates cfg and returns a Driver.
func New(cfg Config) (*Driver, error) {
	if cfg.Cores <= 0 {
		return nil, fmt.Errorf("%w, got %d", sim.ErrInvalidCores, cfg.Cores)
	}
	if cfg.Scheme == sim.RR && cfg.Quantum <= 0 {
		return nil, fmt.Errorf("scheme rr requires a positive quantum, got %d", cfg.Quantum)
	}
	if !trace.IsValidTraceLevel(string(cfg.TraceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", cfg.TraceLevel)
	}
	return &Driver{cfg: cfg}, nil
}

// Run simulates jobs from time zero until every job has finished.
// Each call starts from a fresh engine.
func (d *Driver) Run(jobs []workload.JobSpec) (*Result, error) {
	if len(jobs) == 0 {
		return nil, errors.New("no jobs to run")
	}
	engine, err := sim.NewEngine(d.cfg.Cores, d.cfg.Scheme)
	if err != nil {
		return nil, err
	}
	defer engine.CleanUp()

	level := d.cfg.TraceLevel
	if level == "" {
		level = trace.TraceLevelNone
	}
	// Completion records feed the per-job report, so the engine always traces.
	engine.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: level})

	d.engine = engine
	d.clock = 0
	d.seq = 0
	d.events = NewEventHeap()
	d.cores = make([]coreState, d.cfg.Cores)
	d.remaining = make(map[int]int64, len(jobs))

	for _, j := range jobs {
		d.events.Schedule(NewJobArrivalEvent(j.Arrival, j.Number, j.RunTime, j.Priority, d.nextID()))
	}

	for d.events.Len() > 0 {
		ev := d.events.PopNext()
		if d.stale(ev) {
			logrus.Tracef("[t=%d] dropping stale %s", ev.Timestamp(), ev.Type())
			continue
		}
		d.clock = ev.Timestamp()
		if err := ev.Execute(d); err != nil {
			return nil, fmt.Errorf("%s at t=%d: %w", ev.Type(), d.clock, err)
		}
		if d.cfg.ShowQueue {
			logrus.Infof("[t=%d] %s", d.clock, engine.ShowQueue())
		}
	}

	m := engine.Metrics()
	if m.CompletedJobs != len(jobs) {
		return nil, fmt.Errorf("run ended with %d of %d jobs finished", m.CompletedJobs, len(jobs))
	}
	res := &Result{
		Scheme:      d.cfg.Scheme,
		Cores:       d.cfg.Cores,
		Completed:   m.CompletedJobs,
		EndTime:     engine.Clock(),
		Metrics:     m,
		Completions: engine.Trace.Completions,
	}
	if res.AverageWait, err = engine.AverageWaitingTime(); err != nil {
		return nil, err
	}
	if res.AverageTurnaround, err = engine.AverageTurnaroundTime(); err != nil {
		return nil, err
	}
	if res.AverageResponse, err = engine.AverageResponseTime(); err != nil {
		return nil, err
	}
	if level == trace.TraceLevelDecisions {
		res.Trace = engine.Trace
	}
	logrus.Infof("Run finished at t=%d: %d jobs, scheme=%s, cores=%d", res.EndTime, res.Completed, res.Scheme, res.Cores)
	return res, nil
}

func (d *Driver) nextID() uint64 {
	id := d.seq
	d.seq++
	return id
}

func (d *Driver) handleArrival(e *JobArrivalEvent) error {
	logrus.Debugf("[t=%d] job %d arrives (run=%d, priority=%d)", d.clock, e.Job, e.RunTime, e.Priority)
	core, ok, err := d.engine.JobArrived(e.Job, d.clock, e.RunTime, e.Priority)
	if err != nil {
		return fmt.Errorf("job %d: %w", e.Job, err)
	}
	d.remaining[e.Job] = e.RunTime
	if ok {
		d.install(core, e.Job)
	}
	return nil
}

// stale reports whether a finish or quantum event was armed for an earlier
// occupant of its core.
func (d *Driver) stale(ev Event) bool {
	var core int
	var gen uint64
	switch e := ev.(type) {
	case *JobFinishedEvent:
		core, gen = e.Core, e.Gen
	case *QuantumExpiredEvent:
		core, gen = e.Core, e.Gen
	default:
		return false
	}
	cs := d.cores[core]
	return !cs.busy || cs.gen != gen
}

func (d *Driver) handleFinished(e *JobFinishedEvent) error {
	cs := &d.cores[e.Core]
	job := cs.job
	logrus.Debugf("[t=%d] job %d finishes on core %d", d.clock, job, e.Core)
	d.vacate(e.Core)
	delete(d.remaining, job)

	next, ok, err := d.engine.JobFinished(e.Core, job, d.clock)
	if err != nil {
		return fmt.Errorf("job %d on core %d: %w", job, e.Core, err)
	}
	if ok {
		return d.installNext(e.Core, next)
	}
	return nil
}

func (d *Driver) handleQuantum(e *QuantumExpiredEvent) error {
	cs := &d.cores[e.Core]
	logrus.Debugf("[t=%d] quantum expires for job %d on core %d", d.clock, cs.job, e.Core)
	d.vacate(e.Core)

	next, ok, err := d.engine.QuantumExpired(e.Core, d.clock)
	if err != nil {
		return fmt.Errorf("core %d: %w", e.Core, err)
	}
	if ok {
		return d.installNext(e.Core, next)
	}
	return nil
}

// installNext places the job the engine handed the freed core. The engine
// always refills the core that was just vacated.
func (d *Driver) installNext(core, job int) error {
	if running := d.engine.RunningOn(core); running != job {
		return fmt.Errorf("engine placed job %d on core %d, reported %d", running, core, job)
	}
	d.install(core, job)
	return nil
}

// vacate charges the elapsed slice to the job on core and marks the core idle.
func (d *Driver) vacate(core int) {
	cs := &d.cores[core]
	d.remaining[cs.job] -= d.clock - cs.since
	if d.remaining[cs.job] < 0 {
		d.remaining[cs.job] = 0
	}
	cs.busy = false
	cs.gen++
}

// install places job on core and arms its finish timer, plus a quantum timer under RR.
// A busy core means the engine preempted its occupant.
func (d *Driver) install(core, job int) {
	cs := &d.cores[core]
	if cs.busy {
		victim := cs.job
		d.vacate(core)
		logrus.Debugf("[t=%d] job %d preempts job %d on core %d (remaining %d)",
			d.clock, job, victim, core, d.remaining[victim])
	}
	cs.job, cs.busy, cs.since = job, true, d.clock
	cs.gen++
	d.events.Schedule(NewJobFinishedEvent(d.clock+d.remaining[job], core, cs.gen, d.nextID()))
	if d.cfg.Scheme == sim.RR {
		d.events.Schedule(NewQuantumExpiredEvent(d.clock+d.cfg.Quantum, core, cs.gen, d.nextID()))
	}
}
