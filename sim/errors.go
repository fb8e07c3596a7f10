package sim

import "errors"

var (
	// ErrNotStarted is returned by Engine methods called on an engine that was
	// never constructed with NewEngine or has been cleaned up.
	ErrNotStarted = errors.New("engine not started")
	// ErrInvalidCores is returned by NewEngine for a non-positive core count.
	ErrInvalidCores = errors.New("core count must be positive")
	// ErrInvalidCore is returned for a core index outside [0, cores).
	ErrInvalidCore = errors.New("core index out of range")
	// ErrCoreIdle is returned by JobFinished when the core holds no job.
	ErrCoreIdle = errors.New("core is idle")
	// ErrJobMismatch is returned by JobFinished when the core holds a different job.
	ErrJobMismatch    = errors.New("job is not running on core")
	ErrDuplicateJob   = errors.New("job number already active")
	ErrInvalidRunTime = errors.New("run time must be positive")
	// ErrTimeRegression is returned when an event's time precedes the last event seen.
	ErrTimeRegression = errors.New("event time precedes previous event")
	// ErrNotRoundRobin is returned by QuantumExpired under any scheme other than RR.
	ErrNotRoundRobin = errors.New("quantum expiry requires round-robin scheme")
	// ErrNoCompletedJobs is returned by the averages before any job has finished.
	ErrNoCompletedJobs = errors.New("no completed jobs")
)
