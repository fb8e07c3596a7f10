package driver

// EventType names a kind of driver event.
type EventType string

const (
	EventTypeJobFinished    EventType = "JobFinished"
	EventTypeQuantumExpired EventType = "QuantumExpired"
	EventTypeJobArrival     EventType = "JobArrival"
)

// EventTypePriority defines ordering for simultaneous events: completions
// free cores first, then quantum timers fire, then new jobs arrive.
var EventTypePriority = map[EventType]int{
	EventTypeJobFinished:    1,
	EventTypeQuantumExpired: 2,
	EventTypeJobArrival:     3,
}

// Event represents a driver event
type Event interface {
	Timestamp() int64
	EventID() uint64
	Type() EventType
	Execute(d *Driver) error
}

// BaseEvent provides common event fields
type BaseEvent struct {
	timestamp int64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp int64, eventType EventType, id uint64) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   id,
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// JobArrivalEvent delivers a job to the engine.
type JobArrivalEvent struct {
	BaseEvent
	Job      int
	RunTime  int64
	Priority int
}

func NewJobArrivalEvent(timestamp int64, job int, runTime int64, priority int, id uint64) *JobArrivalEvent {
	return &JobArrivalEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeJobArrival, id),
		Job:       job,
		RunTime:   runTime,
		Priority:  priority,
	}
}

func (e *JobArrivalEvent) Execute(d *Driver) error {
	return d.handleArrival(e)
}

// JobFinishedEvent fires when the job installed on Core runs out of work.
// Gen ties the event to one installation; it is ignored once the core has
// been reassigned.
type JobFinishedEvent struct {
	BaseEvent
	Core int
	Gen  uint64
}

func NewJobFinishedEvent(timestamp int64, core int, gen uint64, id uint64) *JobFinishedEvent {
	return &JobFinishedEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeJobFinished, id),
		Core:      core,
		Gen:       gen,
	}
}

func (e *JobFinishedEvent) CoreID() int { return e.Core }

func (e *JobFinishedEvent) Execute(d *Driver) error {
	return d.handleFinished(e)
}

// QuantumExpiredEvent fires when the time slice of the job installed on Core ends.
type QuantumExpiredEvent struct {
	BaseEvent
	Core int
	Gen  uint64
}

func NewQuantumExpiredEvent(timestamp int64, core int, gen uint64, id uint64) *QuantumExpiredEvent {
	return &QuantumExpiredEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeQuantumExpired, id),
		Core:      core,
		Gen:       gen,
	}
}

func (e *QuantumExpiredEvent) CoreID() int { return e.Core }

func (e *QuantumExpiredEvent) Execute(d *Driver) error {
	return d.handleQuantum(e)
}
