package coro

import (
	"fmt"
	"os"
)

const initialDepth = 16

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithStackCapacity sets the stack capacity in bytes of every spawned
// coroutine. It is rounded up to whole pages.
func WithStackCapacity(bytes int) Option {
	return func(s *Scheduler) {
		if bytes > 0 {
			s.stackCap = bytes
		}
	}
}

// WithGuard controls whether stacks get a guard page where the platform
// supports one.
func WithGuard(on bool) Option {
	return func(s *Scheduler) { s.guard = on }
}

// Scheduler is the coroutine call stack. The running coroutine is always the
// last entry; the first entry is the root frame of the driving goroutine.
//
// A Scheduler must only be used from the context that is currently running.
type Scheduler struct {
	frames []*Coroutine
	root   *Coroutine

	stackCap int
	guard    bool
	delta    float64
	nextID   uint64
	live     int
	closed   bool
}

// New creates a scheduler whose root frame is the calling goroutine.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		stackCap: DefaultStackPages * os.Getpagesize(),
		guard:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = &Coroutine{sched: s, ctx: newExecContext(), state: Running, onStack: true}
	s.frames = make([]*Coroutine, 1, initialDepth)
	s.frames[0] = s.root
	s.nextID = 1
	return s
}

// Spawn creates a suspended coroutine that runs entry(s, arg) when first
// resumed. When entry returns the coroutine is marked finished and control
// returns to whoever resumed it.
func (s *Scheduler) Spawn(entry Entry, arg any) *Coroutine {
	if s.closed {
		panic("coro: spawn on a closed scheduler")
	}
	if entry == nil {
		panic("coro: spawn with nil entry")
	}
	c := &Coroutine{
		id:    s.nextID,
		sched: s,
		entry: entry,
		arg:   arg,
		ctx:   newExecContext(),
		stack: allocStack(s.stackCap, s.guard),
		state: Created,
		done:  make(chan struct{}),
	}
	s.nextID++
	s.live++
	go s.run(c)
	Logger().Debug("coro: spawn", "id", c.id, "stack", c.stack.Cap(), "guarded", c.stack.Guarded())
	return c
}

// run is the body of a coroutine's goroutine. It parks until the first
// resume, runs the entry and then finishes the coroutine by handing control
// back to its parent exactly once.
func (s *Scheduler) run(c *Coroutine) {
	defer close(c.done)
	c.ctx.park()

	returned := false
	defer func() {
		if returned {
			return
		}
		r := recover()
		if r == nil {
			if c.killed {
				return
			}
			r = "runtime.Goexit called inside coroutine"
		}
		c.panic = capturePanic(c.id, r)
		s.finish(c)
	}()

	c.entry(s, c.arg)
	returned = true
	s.finish(c)
}

func (s *Scheduler) finish(c *Coroutine) {
	c.state = Finished
	c.finished.Store(true)
	parent := s.pop(c)
	handoff(parent.ctx)
}

// Resume pushes c onto the call stack and transfers control into it. It
// returns when c yields or finishes. A panic inside c is re-raised here as a
// *PanicError.
func (s *Scheduler) Resume(c *Coroutine) {
	switch {
	case c == nil:
		panic("coro: resume of nil coroutine")
	case c.sched != s:
		panic("coro: resume of a coroutine owned by another scheduler")
	case c == s.root:
		panic("coro: resume of the root frame")
	case c.released:
		panic(fmt.Sprintf("coro: resume of destroyed coroutine %d", c.id))
	case c.finished.Load():
		panic(fmt.Sprintf("coro: resume of finished coroutine %d", c.id))
	case c.onStack:
		panic(fmt.Sprintf("coro: coroutine %d is already on the call stack", c.id))
	}

	parent := s.frames[len(s.frames)-1]
	parent.state = Suspended
	s.frames = append(s.frames, c)
	c.onStack = true
	c.state = Running

	switchTo(parent.ctx, c.ctx)

	parent.state = Running
	if pe := c.panic; pe != nil {
		c.panic = nil
		panic(pe)
	}
}

// Yield suspends the running coroutine and transfers control to its parent.
// It returns when the coroutine is resumed again.
func (s *Scheduler) Yield() {
	if len(s.frames) < 2 {
		panic("coro: yield from the root frame")
	}
	c := s.frames[len(s.frames)-1]
	c.stack.check()
	c.state = Suspended
	parent := s.pop(c)
	switchTo(c.ctx, parent.ctx)
}

// pop removes c from the top of the call stack and returns the new top.
func (s *Scheduler) pop(c *Coroutine) *Coroutine {
	n := len(s.frames)
	if n < 2 {
		panic("coro: pop past the root frame")
	}
	if s.frames[n-1] != c {
		panic(fmt.Sprintf("coro: coroutine %d is not running", c.id))
	}
	s.frames[n-1] = nil
	s.frames = s.frames[:n-1]
	c.onStack = false
	return s.frames[n-2]
}

// Step is the per-frame driver call: it records dt as the frame delta and
// resumes c unless it already finished. It reports whether c is finished.
func (s *Scheduler) Step(c *Coroutine, dt float64) bool {
	if dt < 0 {
		dt = 0
	}
	s.delta = dt
	if !c.Finished() {
		s.Resume(c)
	}
	return c.Finished()
}

// Delta returns the elapsed time of the current frame.
func (s *Scheduler) Delta() float64 { return s.delta }

// Depth returns the number of entries on the call stack, root included.
func (s *Scheduler) Depth() int { return len(s.frames) }

// Running returns the running coroutine, or nil when the root is running.
func (s *Scheduler) Running() *Coroutine {
	top := s.frames[len(s.frames)-1]
	if top == s.root {
		return nil
	}
	return top
}

// Destroy releases c and its stack. A suspended coroutine that has not
// finished is unwound first. Destroying a coroutine that is on the call stack
// panics: only destroy between frames, from the root.
func (s *Scheduler) Destroy(c *Coroutine) {
	switch {
	case c == nil:
		return
	case c.sched != s || c == s.root:
		panic("coro: destroy of a foreign or root coroutine")
	case c.released:
		panic(fmt.Sprintf("coro: coroutine %d destroyed twice", c.id))
	case c.onStack:
		panic(fmt.Sprintf("coro: destroy of active coroutine %d", c.id))
	}

	if !c.finished.Load() {
		c.killed = true
		c.ctx.terminate()
	}
	<-c.done

	c.released = true
	c.stack.release()
	s.live--
	Logger().Debug("coro: destroy", "id", c.id, "finished", c.finished.Load())
}

// Close tears the scheduler down. Only the root may remain on the call stack.
func (s *Scheduler) Close() {
	if len(s.frames) != 1 {
		panic(fmt.Sprintf("coro: close with %d coroutines on the call stack", len(s.frames)-1))
	}
	if s.live > 0 {
		Logger().Warn("coro: close with live coroutines", "count", s.live)
	}
	s.closed = true
}
