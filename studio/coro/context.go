package coro

import "runtime"

// execContext is the saved execution state of a coroutine: the goroutine that
// runs it, parked on wake whenever it is not the running context.
//
// This file is the only place that transfers control between contexts.
type execContext struct {
	wake chan struct{}
	kill chan struct{}
}

func newExecContext() *execContext {
	return &execContext{
		wake: make(chan struct{}),
		kill: make(chan struct{}),
	}
}

// switchTo hands control to to and parks the caller on from until another
// context switches back into it.
func switchTo(from, to *execContext) {
	handoff(to)
	from.park()
}

// handoff hands control to to without parking. The caller must not touch
// scheduler state afterwards.
func handoff(to *execContext) {
	to.wake <- struct{}{}
}

// park blocks until the context is switched into. A killed context never
// returns: its goroutine unwinds through runtime.Goexit.
func (x *execContext) park() {
	select {
	case <-x.wake:
	case <-x.kill:
		runtime.Goexit()
	}
}

func (x *execContext) terminate() {
	close(x.kill)
}
