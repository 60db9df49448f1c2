package sound

import "go.uber.org/atomic"

const queueSlots = 16

// Queue is a fixed-size single-consumer queue of sound triggers.
// It never allocates; pushing into a full queue drops the trigger.
type Queue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [queueSlots]ID
}

// TryPush enqueues id, returning false if the queue is full.
func (q *Queue) TryPush(id ID) bool {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= queueSlots {
		return false
	}
	if !q.head.CompareAndSwap(head, head+1) {
		return false
	}
	q.slots[head%queueSlots] = id
	return true
}

// Play implements Sink by enqueueing.
func (q *Queue) Play(id ID) { q.TryPush(id) }

// TryPop dequeues one trigger, returning false if empty.
func (q *Queue) TryPop() (ID, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return None, false
	}
	id := q.slots[tail%queueSlots]
	q.tail.Store(tail + 1)
	return id, true
}

// Drain pops every queued trigger into sink and returns how many it played.
func (q *Queue) Drain(sink Sink) int {
	n := 0
	for {
		id, ok := q.TryPop()
		if !ok {
			return n
		}
		if sink != nil {
			sink.Play(id)
		}
		n++
	}
}

// Len returns the number of queued triggers.
func (q *Queue) Len() int {
	return int(q.head.Load() - q.tail.Load())
}
