package timeline

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipTimeStaysInUnitRangeAndIsMonotone(t *testing.T) {
	faker := gofakeit.New(7)
	for i := 0; i < 500; i++ {
		d := faker.Float64Range(0.001, 10)
		start := faker.Float64Range(0, 20)
		t1 := faker.Float64Range(-5, 40)
		t2 := t1 + faker.Float64Range(0, 10)

		a := Clock{CurrentTime: t1, ClipStartTime: start, GlobEnd: start}
		b := Clock{CurrentTime: t2, ClipStartTime: start, GlobEnd: start}
		pa, pb := a.ClipTime(d), b.ClipTime(d)

		require.GreaterOrEqual(t, pa, 0.0, spew.Sdump(a))
		require.LessOrEqual(t, pa, 1.0, spew.Sdump(a))
		require.LessOrEqual(t, pa, pb, "d=%v start=%v t1=%v t2=%v", d, start, t1, t2)
	}
}

func TestPrevClipTimeNeverExceedsClipTime(t *testing.T) {
	faker := gofakeit.New(11)
	for i := 0; i < 500; i++ {
		c := Clock{
			CurrentTime: faker.Float64Range(0, 30),
			DeltaTime:   faker.Float64Range(0, 1),
		}
		c.ClipStartTime = faker.Float64Range(0, 30)
		c.GlobEnd = c.ClipStartTime
		d := faker.Float64Range(0.001, 5)

		require.LessOrEqual(t, c.PrevClipTime(d), c.ClipTime(d), spew.Sdump(c))
	}
}

func TestClipTimeReservesTimeline(t *testing.T) {
	var c Clock
	c.Advance(0.1)

	c.ClipTime(1)
	c.ClipTime(0.5)
	assert.Equal(t, 1.0, c.GlobEnd)
	assert.Equal(t, 0.0, c.ClipStartTime)

	c.WaitForEnd()
	assert.Equal(t, 1.0, c.ClipStartTime)

	c.ClipTime(0.25)
	assert.Equal(t, 1.25, c.GlobEnd)
	assert.LessOrEqual(t, c.ClipStartTime, c.GlobEnd)
}

func TestWaitAdvancesPastReservedSteps(t *testing.T) {
	var c Clock

	c.Wait(0.5)
	assert.Equal(t, 0.5, c.ClipStartTime)

	// A shorter wait inside a longer parallel step still ends with the step.
	c.ClipTime(2)
	c.Wait(0.5)
	assert.Equal(t, 2.5, c.ClipStartTime)
	assert.Equal(t, 2.5, c.GlobEnd)
}

func TestZeroDurationCompletesOnceReached(t *testing.T) {
	c := Clock{CurrentTime: 1, ClipStartTime: 1, GlobEnd: 1}
	assert.Equal(t, 1.0, c.ClipTime(0))

	c = Clock{CurrentTime: 0.5, ClipStartTime: 1, GlobEnd: 1}
	assert.Equal(t, 0.0, c.ClipTime(0))
	assert.Equal(t, 1.0, c.GlobEnd)
}

func TestAdvanceClampsNegativeDelta(t *testing.T) {
	var c Clock
	c.Advance(0.5)
	c.Advance(-1)
	assert.Equal(t, 0.5, c.CurrentTime)
	assert.Equal(t, 0.0, c.DeltaTime)
}

func TestCrossedFiresOnceAtThreshold(t *testing.T) {
	c := Clock{CurrentTime: 0.6, DeltaTime: 0.2}
	require.InDelta(t, 0.4, c.PrevClipTime(1), 1e-9)
	require.InDelta(t, 0.6, c.ClipTime(1), 1e-9)

	fired := 0
	assert.True(t, c.Trigger(1, 0.5, func() { fired++ }))

	c.Advance(0.2)
	assert.False(t, c.Trigger(1, 0.5, func() { fired++ }))
	assert.Equal(t, 1, fired)
}

func TestStartedAcrossFrames(t *testing.T) {
	var c Clock
	starts := 0
	for i := 0; i < 10; i++ {
		c.Advance(0.05)
		c.Wait(0.2)
		if c.Started(0.1) {
			starts++
		}
	}
	assert.Equal(t, 1, starts)
}

func TestFinishedAfterLastStep(t *testing.T) {
	var c Clock
	script := func() {
		c.ClipTime(1)
		c.WaitForEnd()
	}

	c.Advance(0.5)
	script()
	assert.False(t, c.Finished())

	c.Advance(0.5)
	script()
	assert.True(t, c.Finished())

	c.Restart()
	assert.Equal(t, Clock{}, c)
}

func TestRewindSuppressesRepeatedTriggers(t *testing.T) {
	c := Clock{}
	c.Advance(0.6)
	fired := 0
	c.Trigger(1, 0.5, func() { fired++ })

	c.Rewind()
	c.Trigger(1, 0.5, func() { fired++ })
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0.6, c.CurrentTime)
}
