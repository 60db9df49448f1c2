package coro

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	slotSize = 8

	// stackCanary sits in the lowest slot of every stack.
	stackCanary uint64 = 0x5041_4e49_4d5f_5354

	// DefaultStackPages is the default stack capacity in pages.
	DefaultStackPages = 16
)

// Stack is a fixed-capacity, downward-growing region owned by one coroutine.
//
// On platforms with memory protection the region is mapped privately with an
// inaccessible guard page below it. Everywhere, the lowest slot holds a canary
// that is verified whenever the owner yields.
type Stack struct {
	mem      []byte // whole mapping, guard page included
	usable   []byte
	sp       int
	guarded  bool
	released bool
}

// allocStack reserves a stack of at least capacity bytes rounded up to whole
// pages. Failing to map memory is fatal.
func allocStack(capacity int, guard bool) *Stack {
	page := os.Getpagesize()
	if capacity < page {
		capacity = page
	}
	size := (capacity + page - 1) / page * page

	mem, usable, guarded, err := mapStack(size, page, guard)
	if err != nil {
		panic(fmt.Sprintf("coro: stack allocation of %d bytes failed: %v", size, err))
	}
	s := &Stack{mem: mem, usable: usable, sp: len(usable), guarded: guarded}
	binary.NativeEndian.PutUint64(s.usable[:slotSize], stackCanary)
	return s
}

// Cap returns the usable capacity in bytes.
func (s *Stack) Cap() int { return len(s.usable) }

// Used returns the number of bytes currently holding frames.
func (s *Stack) Used() int { return len(s.usable) - s.sp }

// Guarded reports whether a hardware guard page protects the low end.
func (s *Stack) Guarded() bool { return s.guarded }

// push carves a frame of n slots off the top of the stack.
func (s *Stack) push(n int) frame {
	if s.released {
		panic("coro: push on a released stack")
	}
	sp := s.sp - n*slotSize
	if sp < slotSize {
		panic(fmt.Sprintf("coro: coroutine stack overflow (%d bytes)", s.Cap()))
	}
	s.sp = sp
	return frame{s: s, off: sp, n: n}
}

// pop releases f, which must be the most recently pushed frame.
func (s *Stack) pop(f frame) {
	if f.s != s || f.off != s.sp {
		panic("coro: stack frames popped out of order")
	}
	s.sp += f.n * slotSize
}

// check verifies the canary.
func (s *Stack) check() {
	if binary.NativeEndian.Uint64(s.usable[:slotSize]) != stackCanary {
		panic("coro: coroutine stack overflow (canary clobbered)")
	}
}

func (s *Stack) release() {
	if s.released {
		panic("coro: stack released twice")
	}
	s.released = true
	mem := s.mem
	s.mem, s.usable = nil, nil
	if err := unmapStack(mem); err != nil {
		Logger().Warn("coro: unmap stack", "err", err)
	}
}

// frame is a window of slots on a Stack.
type frame struct {
	s   *Stack
	off int
	n   int
}

func (f frame) get(i int) float64 {
	o := f.slot(i)
	return math.Float64frombits(binary.NativeEndian.Uint64(f.s.usable[o : o+slotSize]))
}

func (f frame) set(i int, v float64) {
	o := f.slot(i)
	binary.NativeEndian.PutUint64(f.s.usable[o:o+slotSize], math.Float64bits(v))
}

func (f frame) slot(i int) int {
	if i < 0 || i >= f.n {
		panic(fmt.Sprintf("coro: frame slot %d out of range [0,%d)", i, f.n))
	}
	return f.off + i*slotSize
}
