// Implements the WaitQueue, which holds all jobs that are not assigned to a core.
// Jobs are inserted in the order defined by the engine's scheme.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is an ordered sequence of jobs waiting for a core.
// Insertion is a stable ordered insert: a new job lands immediately before the
// first queued job it compares strictly before, or at the tail if there is none.
// All operations are total; out-of-range indices and empty-queue removals
// return nil or 0.
type WaitQueue struct {
	cmp   Comparator
	queue []*Job
}

// NewWaitQueue returns an empty queue ordered by cmp.
// The comparator cannot be changed afterwards.
func NewWaitQueue(cmp Comparator) *WaitQueue {
	if cmp == nil {
		panic("NewWaitQueue: cmp must not be nil")
	}
	return &WaitQueue{cmp: cmp}
}

// Offer inserts j in comparator order and returns the zero-based position where it landed.
func (wq *WaitQueue) Offer(j *Job) int {
	if j == nil {
		panic("Offer: job must not be nil")
	}
	pos := len(wq.queue)
	for i, queued := range wq.queue {
		if wq.cmp.Compare(j, queued) < 0 {
			pos = i
			break
		}
	}
	wq.queue = append(wq.queue, nil)
	copy(wq.queue[pos+1:], wq.queue[pos:])
	wq.queue[pos] = j
	return pos
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Job {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Poll removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Poll() *Job {
	return wq.RemoveAt(0)
}

// At returns the job at index, or nil if index is out of range.
func (wq *WaitQueue) At(index int) *Job {
	if index < 0 || index >= len(wq.queue) {
		return nil
	}
	return wq.queue[index]
}

// Remove deletes every entry that is the same *Job as j and returns how many were removed.
// Identity is pointer equality; the comparator is not consulted.
func (wq *WaitQueue) Remove(j *Job) int {
	kept := wq.queue[:0]
	removed := 0
	for _, queued := range wq.queue {
		if queued == j {
			removed++
			continue
		}
		kept = append(kept, queued)
	}
	for i := len(kept); i < len(wq.queue); i++ {
		wq.queue[i] = nil
	}
	wq.queue = kept
	return removed
}

// RemoveAt removes and returns the job at index, shifting later jobs up one place.
// Returns nil if index is out of range.
func (wq *WaitQueue) RemoveAt(index int) *Job {
	if index < 0 || index >= len(wq.queue) {
		return nil
	}
	j := wq.queue[index]
	copy(wq.queue[index:], wq.queue[index+1:])
	wq.queue[len(wq.queue)-1] = nil
	wq.queue = wq.queue[:len(wq.queue)-1]
	return j
}

// Len returns the number of jobs in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers MUST NOT
// modify, append to, or reslice it.
func (wq *WaitQueue) Items() []*Job {
	return wq.queue
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range wq.queue {
		sb.WriteString(fmt.Sprint(j.Number))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
