package driver

import "container/heap"

// coreEvent is implemented by events bound to a single core.
type coreEvent interface {
	CoreID() int
}

// EventHeap is a min-heap of pending driver events.
// Ordering: timestamp → type priority → core (finish/quantum only) → event ID
type EventHeap struct {
	events []Event
}

// NewEventHeap creates an empty event heap
func NewEventHeap() *EventHeap {
	h := &EventHeap{events: make([]Event, 0)}
	heap.Init(h)
	return h
}

func (h *EventHeap) Len() int { return len(h.events) }

func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}
	if pi, pj := EventTypePriority[ei.Type()], EventTypePriority[ej.Type()]; pi != pj {
		return pi < pj
	}
	// Simultaneous core events resolve in ascending core order so that a
	// lower-numbered core always claims the queue front first.
	if ci, ok := ei.(coreEvent); ok {
		if cj, ok := ej.(coreEvent); ok && ci.CoreID() != cj.CoreID() {
			return ci.CoreID() < cj.CoreID()
		}
	}
	return ei.EventID() < ej.EventID()
}

func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

func (h *EventHeap) Push(x any) {
	h.events = append(h.events, x.(Event))
}

func (h *EventHeap) Pop() any {
	old := h.events
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.events = old[:n-1]
	return item
}

// Schedule adds an event to the heap
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, e)
}

// PopNext removes and returns the earliest event, or nil when empty.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(Event)
}

// Peek returns the earliest event without removing it
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0]
}
