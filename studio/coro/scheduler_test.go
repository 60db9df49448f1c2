package coro

import (
	"errors"
	"fmt"
	"testing"

	"panim/studio/ease"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeYieldPingPong(t *testing.T) {
	s := New()
	var log []string
	c := s.Spawn(func(s *Scheduler, arg any) {
		for i := 0; i < 3; i++ {
			log = append(log, fmt.Sprintf("%s%d", arg, i))
			s.Yield()
		}
	}, "co")

	assert.Equal(t, Created, c.State())
	for i := 0; i < 3; i++ {
		s.Resume(c)
		log = append(log, "root")
		assert.Equal(t, Suspended, c.State())
		assert.Equal(t, 1, s.Depth())
	}
	s.Resume(c)
	assert.True(t, c.Finished())
	assert.Equal(t, Finished, c.State())
	assert.Equal(t, []string{"co0", "root", "co1", "root", "co2", "root"}, log)

	s.Destroy(c)
	s.Close()
}

func TestNestedResumesReturnToRootOnce(t *testing.T) {
	const n = 5

	s := New()
	var (
		log                []string
		finishedBeforeExit [n + 1]bool
		childDone          [n + 1]bool
		cos                [n + 2]*Coroutine
	)
	for i := n; i >= 1; i-- {
		i := i
		cos[i] = s.Spawn(func(s *Scheduler, _ any) {
			log = append(log, fmt.Sprintf("enter%d", i))
			child := cos[i+1]
			if child != nil {
				s.Resume(child)
			}
			s.Yield()
			if child != nil {
				s.Resume(child)
				childDone[i] = child.Finished()
			}
			finishedBeforeExit[i] = cos[i].Finished()
			log = append(log, fmt.Sprintf("exit%d", i))
		}, nil)
	}

	s.Resume(cos[1])
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []string{"enter1", "enter2", "enter3", "enter4", "enter5"}, log)
	for i := 1; i <= n; i++ {
		assert.False(t, cos[i].Finished(), "coroutine %d", i)
		assert.Equal(t, Suspended, cos[i].State())
	}

	s.Resume(cos[1])
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, []string{"exit5", "exit4", "exit3", "exit2", "exit1"}, log[n:])
	for i := 1; i <= n; i++ {
		assert.True(t, cos[i].Finished(), "coroutine %d", i)
		assert.False(t, finishedBeforeExit[i], "coroutine %d finished before its entry returned", i)
		if i < n {
			assert.True(t, childDone[i], "child of %d", i)
		}
		s.Destroy(cos[i])
	}
	s.Close()
}

func TestResumeFinishedPanics(t *testing.T) {
	s := New()
	c := s.Spawn(func(*Scheduler, any) {}, nil)
	s.Resume(c)
	require.True(t, c.Finished())

	assert.PanicsWithValue(t, "coro: resume of finished coroutine 1", func() { s.Resume(c) })
	s.Destroy(c)
	assert.Panics(t, func() { s.Resume(c) })
	assert.Panics(t, func() { s.Destroy(c) })
}

func TestYieldFromRootPanics(t *testing.T) {
	s := New()
	assert.PanicsWithValue(t, "coro: yield from the root frame", s.Yield)
}

func TestDestroyActiveCoroutinePanics(t *testing.T) {
	s := New()
	var self *Coroutine
	self = s.Spawn(func(s *Scheduler, _ any) {
		s.Destroy(self)
	}, nil)

	defer func() {
		r := recover()
		pe, ok := r.(*PanicError)
		require.True(t, ok, "recovered %v", r)
		assert.Equal(t, "coro: destroy of active coroutine 1", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.True(t, self.Finished())
		assert.Equal(t, 1, s.Depth())
	}()
	s.Resume(self)
}

func TestDestroySuspendedCoroutineUnwinds(t *testing.T) {
	s := New()
	unwound := false
	reached := false
	c := s.Spawn(func(s *Scheduler, _ any) {
		defer func() { unwound = true }()
		s.Yield()
		reached = true
	}, nil)

	s.Resume(c)
	s.Destroy(c)
	assert.True(t, unwound)
	assert.False(t, reached)
	assert.False(t, c.Finished())
	s.Close()
}

func TestDestroyNeverResumed(t *testing.T) {
	s := New()
	ran := false
	c := s.Spawn(func(*Scheduler, any) { ran = true }, nil)
	s.Destroy(c)
	assert.False(t, ran)
	s.Close()
}

func TestPanicPropagatesThroughParents(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	inner := s.Spawn(func(*Scheduler, any) { panic(boom) }, nil)
	outer := s.Spawn(func(s *Scheduler, _ any) { s.Resume(inner) }, nil)

	defer func() {
		pe, ok := recover().(*PanicError)
		require.True(t, ok)
		assert.Equal(t, inner.ID(), pe.ID)
		assert.ErrorIs(t, pe, boom)
		assert.True(t, inner.Finished())
		assert.True(t, outer.Finished())
		assert.Equal(t, 1, s.Depth())
	}()
	s.Resume(outer)
}

func TestCloseRequiresOnlyRoot(t *testing.T) {
	s := New()
	c := s.Spawn(func(s *Scheduler, _ any) { s.Close() }, nil)
	assert.Panics(t, func() { s.Resume(c) })
	s.Close()
	assert.Panics(t, func() { s.Spawn(func(*Scheduler, any) {}, nil) })
}

func TestStepDrivesTween(t *testing.T) {
	s := New()
	var x float64
	var xs []float64
	c := s.Spawn(func(s *Scheduler, _ any) {
		Tween(s, 1, ease.Linear, Track{Value: &x, From: 0, To: 10})
		Sleep(s, 0.5)
	}, nil)

	var frames int
	for !s.Step(c, 0.25) {
		frames++
		xs = append(xs, x)
		require.Less(t, frames, 100)
	}
	assert.Equal(t, []float64{2.5, 5, 7.5, 10, 10, 10}, xs)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 0, c.Stack().Used())
	assert.True(t, s.Step(c, 0.25))

	s.Destroy(c)
	s.Close()
}

func TestTweenSnapsExactly(t *testing.T) {
	s := New()
	var v float64
	c := s.Spawn(func(s *Scheduler, _ any) {
		Tween(s, 0.3, ease.Sinstep, Track{Value: &v, From: 0.1, To: 1.0 / 3})
	}, nil)
	for !s.Step(c, 0.07) {
	}
	assert.Equal(t, 1.0/3, v)
	s.Destroy(c)
}

func TestTweenOutsideCoroutinePanics(t *testing.T) {
	s := New()
	assert.PanicsWithValue(t, "coro: tween outside a coroutine", func() { Sleep(s, 1) })
}

func TestResumeYieldDoesNotAllocate(t *testing.T) {
	s := New()
	c := s.Spawn(func(s *Scheduler, _ any) {
		for {
			s.Yield()
		}
	}, nil)
	s.Resume(c)

	allocs := testing.AllocsPerRun(200, func() { s.Resume(c) })
	assert.Zero(t, allocs)
	s.Destroy(c)
	s.Close()
}
