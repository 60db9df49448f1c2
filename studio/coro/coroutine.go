package coro

import "go.uber.org/atomic"

// State is the lifecycle state of a coroutine.
type State uint8

const (
	// Created coroutines have been spawned but never resumed.
	Created State = iota
	// Running is the state of the top of the call stack.
	Running
	// Suspended coroutines are waiting either to be resumed or for a child
	// they resumed to yield.
	Suspended
	// Finished coroutines returned from their entry function.
	Finished
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Entry is the function a coroutine runs. It may yield any number of times
// before returning.
type Entry func(s *Scheduler, arg any)

// Coroutine is a suspendable unit of sequential execution with its own stack.
type Coroutine struct {
	id    uint64
	sched *Scheduler
	entry Entry
	arg   any

	ctx   *execContext
	stack *Stack
	state State

	finished atomic.Bool
	onStack  bool
	killed   bool
	released bool

	panic *PanicError
	done  chan struct{}
}

// ID returns the scheduler-unique coroutine id. The root has id 0.
func (c *Coroutine) ID() uint64 { return c.id }

// State returns the lifecycle state.
func (c *Coroutine) State() State { return c.state }

// Finished reports whether the entry function has returned.
func (c *Coroutine) Finished() bool { return c.finished.Load() }

// Stack returns the coroutine's stack region, nil for the root.
func (c *Coroutine) Stack() *Stack { return c.stack }
