package coro

import "panim/studio/ease"

// Track animates one value from From to To.
type Track struct {
	Value    *float64
	From, To float64
}

const (
	tweenProgress = iota
	tweenDuration
	tweenSlots
)

// Tween blocks the running coroutine for duration seconds of frame time,
// moving every track along fn once per frame and yielding after each update.
// On the last frame every track is set to exactly its To value.
func Tween(s *Scheduler, duration float64, fn ease.Func, tracks ...Track) {
	c := s.Running()
	if c == nil {
		panic("coro: tween outside a coroutine")
	}
	if fn == nil {
		fn = ease.Linear
	}

	f := c.stack.push(tweenSlots)
	f.set(tweenProgress, 0)
	f.set(tweenDuration, duration)

	for f.get(tweenProgress) < 1 {
		t := advance(f.get(tweenProgress), f.get(tweenDuration), s.Delta())
		f.set(tweenProgress, t)

		e := fn(t)
		for _, tr := range tracks {
			if tr.Value == nil {
				continue
			}
			if t >= 1 {
				*tr.Value = tr.To
			} else {
				*tr.Value = tr.From + (tr.To-tr.From)*e
			}
		}
		s.Yield()
	}
	c.stack.pop(f)
}

// Sleep blocks the running coroutine for duration seconds of frame time.
func Sleep(s *Scheduler, duration float64) {
	Tween(s, duration, nil)
}

func advance(t, duration, dt float64) float64 {
	if duration <= 0 {
		return 1
	}
	t = (t*duration + dt) / duration
	if t > 1 {
		return 1
	}
	return t
}
