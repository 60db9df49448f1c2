// Package coro implements stackful coroutines for animation scripts.
//
// A Scheduler keeps the call stack of active coroutines. Its first entry is
// the root: the goroutine of whoever drives the frames. Resume pushes a
// coroutine and transfers control into it; Yield pops the running coroutine
// and transfers control back to its parent. Exactly one context runs at any
// time, so coroutine code may freely touch state shared with the driver.
//
//	s := coro.New()
//	c := s.Spawn(func(s *coro.Scheduler, _ any) {
//		coro.Tween(s, 0.5, ease.Linear, coro.Track{Value: &x, From: 0, To: 1})
//		coro.Sleep(s, 1)
//	}, nil)
//	for !s.Step(c, dt) {
//		// draw x
//	}
//	s.Destroy(c)
//	s.Close()
//
// Contract violations (resuming a finished coroutine, yielding from the root,
// destroying a coroutine that is on the call stack, overflowing a stack) are
// programming errors and panic.
//
// Every coroutine owns a fixed-capacity stack region that holds the frames of
// its blocking primitives. The capacity never grows; overflowing it is fatal.
package coro
