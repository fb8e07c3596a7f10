// Package sim provides the scheduling-decision core of a discrete-event CPU
// scheduling simulator.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - job.go: Job lifecycle (unscheduled → running → preempted/rotated ⇄ resumed → finished)
//   - queue.go: WaitQueue, the stable ordered container of jobs not on a core
//   - scheme.go: the six disciplines and their queue order and preemption rules
//   - engine.go: arrival, completion and quantum-expiry decisions
//
// # Architecture
//
// The Engine is a pure state machine. It never reads input or advances time on its
// own; a caller delivers events in non-decreasing simulated time and applies the
// returned decisions. Sub-packages supply everything around it:
//   - sim/driver/: the event loop that replays a job list through an Engine
//   - sim/workload/: job list ingestion (CSV and YAML)
//   - sim/trace/: decision trace recording and summaries
package sim
