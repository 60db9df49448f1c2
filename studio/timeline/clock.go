// Package timeline implements the stackless replay model.
//
// A script is an ordinary function that is re-run from the top every frame.
// The Clock tells each step where it sits on the timeline, so a step that is
// already complete reproduces its terminal state, a step in progress
// interpolates, and a step that has not started does nothing.
//
// A frame looks like:
//
//	clock.Advance(dt)
//	script(&clock)
//	done := clock.Finished()
//
// Scripts must be idempotent for a fixed CurrentTime: any side effect other
// than writing animated values has to be gated with Crossed, Started or
// Trigger so it fires once, on the frame that crosses its threshold.
package timeline

import "math"

// Clock is the timeline state threaded through a replay script.
//
// ClipStartTime <= GlobEnd holds at all times.
type Clock struct {
	// CurrentTime accumulates frame deltas since the last Restart.
	CurrentTime float64
	// ClipStartTime is where the script currently is on the timeline.
	// It only moves forward through Wait and WaitForEnd and is reset every pass.
	ClipStartTime float64
	// GlobEnd is the furthest point any step of this pass has reserved.
	GlobEnd float64
	// DeltaTime is the last frame's elapsed time.
	DeltaTime float64
}

// Advance starts a new frame dt seconds after the previous one.
// Negative deltas are treated as zero.
func (c *Clock) Advance(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	c.CurrentTime += dt
	c.DeltaTime = dt
	c.ClipStartTime = 0
	c.GlobEnd = 0
}

// Rewind prepares another pass of the script at the current time. No time
// elapses between the two passes, so DeltaTime drops to zero and threshold
// checks cannot fire twice for the same instant.
func (c *Clock) Rewind() {
	c.DeltaTime = 0
	c.ClipStartTime = 0
	c.GlobEnd = 0
}

// Restart moves the clock back to the beginning of the sequence.
func (c *Clock) Restart() {
	*c = Clock{}
}

// ClipTime returns how far the step of the given duration, starting at
// ClipStartTime, has progressed: 0 before it starts, 1 once it is complete.
// It reserves the step on the timeline for WaitForEnd.
func (c *Clock) ClipTime(duration float64) float64 {
	c.reserve(duration)
	return progress(c.CurrentTime-c.ClipStartTime, duration)
}

// PrevClipTime is ClipTime evaluated at the previous frame's time.
func (c *Clock) PrevClipTime(duration float64) float64 {
	c.reserve(duration)
	return progress(c.CurrentTime-c.DeltaTime-c.ClipStartTime, duration)
}

// Wait inserts a pause of the given duration after ClipStartTime and moves
// past every step reserved so far.
func (c *Clock) Wait(duration float64) {
	c.reserve(duration)
	c.ClipStartTime = c.GlobEnd
}

// WaitForEnd moves past every step reserved so far, so that steps declared in
// parallel all complete before the next block begins.
func (c *Clock) WaitForEnd() {
	c.ClipStartTime = c.GlobEnd
}

// Finished reports whether the current time has reached the script position.
// It is meaningful after the script ran and ended with WaitForEnd.
func (c *Clock) Finished() bool {
	return c.CurrentTime >= c.ClipStartTime
}

// Crossed reports whether the step of the given duration crossed progress x
// during the last frame.
func (c *Clock) Crossed(duration, x float64) bool {
	prev := c.PrevClipTime(duration)
	curr := c.ClipTime(duration)
	return prev < x && curr >= x
}

// Started reports whether the step of the given duration began during the
// last frame.
func (c *Clock) Started(duration float64) bool {
	curr := c.ClipTime(duration)
	prev := c.PrevClipTime(duration)
	return curr > 0 && prev == 0
}

// Trigger calls fn when Crossed(duration, x) holds and reports whether it did.
func (c *Clock) Trigger(duration, x float64, fn func()) bool {
	if !c.Crossed(duration, x) {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

func (c *Clock) reserve(duration float64) {
	if end := c.ClipStartTime + duration; duration > 0 && c.GlobEnd < end {
		c.GlobEnd = end
	}
	if c.GlobEnd < c.ClipStartTime {
		c.GlobEnd = c.ClipStartTime
	}
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		if elapsed >= 0 {
			return 1
		}
		return 0
	}
	t := elapsed / duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
