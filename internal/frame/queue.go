// Package frame provides aurora.Scheduler implementations.
//
// Queue is pumped by a host that owns a real repaint cycle (the ebiten Draw
// call): callbacks requested now run on the next Flush. Ticker drives a Queue
// from a fixed-rate clock for hosts that have no repaint signal of their own.
package frame

import (
	"sync"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

type entry struct {
	handle aurora.FrameHandle
	fn     func()
}

// Queue holds frame callbacks until the host's next repaint.
type Queue struct {
	mu      sync.Mutex
	next    aurora.FrameHandle
	pending []entry
	batch   []entry
}

var _ aurora.Scheduler = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame queues fn for the next Flush. Handles are never reused.
func (q *Queue) RequestFrame(fn func()) aurora.FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	q.pending = append(q.pending, entry{handle: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a queued callback. It also covers callbacks in the batch
// currently being flushed that have not run yet. Unknown handles are ignored.
func (q *Queue) CancelFrame(h aurora.FrameHandle) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.batch {
		if q.batch[i].handle == h {
			q.batch[i].fn = nil
			return
		}
	}
}

// Len is the number of callbacks waiting for the next Flush.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs, in request order, every callback that was queued when it was
// called. Callbacks requested while flushing wait for the next Flush.
// It returns the number of callbacks run.
func (q *Queue) Flush() int {
	q.mu.Lock()
	q.batch, q.pending = q.pending, nil
	n := len(q.batch)
	q.mu.Unlock()

	ran := 0
	for i := 0; i < n; i++ {
		q.mu.Lock()
		fn := q.batch[i].fn
		q.batch[i].fn = nil
		q.mu.Unlock()

		if fn != nil {
			fn()
			ran++
		}
	}

	q.mu.Lock()
	q.batch = nil
	q.mu.Unlock()
	return ran
}
