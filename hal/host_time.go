package hal

import "time"

// maxFrameDelta caps a single wall-clock frame so a stall (debugger, window
// drag) does not fast-forward the animation.
const maxFrameDelta = 0.25

type hostTime struct {
	frames  uint64
	seconds float64

	last time.Time
}

func (t *hostTime) Frames() uint64   { return t.frames }
func (t *hostTime) Seconds() float64 { return t.seconds }

func (t *hostTime) step(dt float64) {
	t.frames++
	t.seconds += dt
}

// since returns the wall-clock seconds since the previous call, falling back
// to fallback on the first call.
func (t *hostTime) since(now time.Time, fallback float64) float64 {
	if t.last.IsZero() {
		t.last = now
		return fallback
	}
	dt := now.Sub(t.last).Seconds()
	t.last = now
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
