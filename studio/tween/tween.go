// Package tween moves values toward targets on a replay timeline.
//
// Every Move reads its progress from the clock. It does nothing before the
// step starts, writes the target exactly once the step completes, and in
// between interpolates from the value's current contents. Because the source
// is the current value rather than a remembered start, a step whose target is
// redirected mid-flight stays continuous, and the same storage must be passed
// on every frame.
package tween

import (
	"panim/studio/ease"
	"panim/studio/timeline"

	"golang.org/x/image/math/f64"
)

// Interpolator returns the value between from and to at progress t in (0, 1).
type Interpolator[T any] func(from, to T, t float64) T

// MoveFunc advances *v toward target over duration using interp.
func MoveFunc[T any](c *timeline.Clock, v *T, target T, duration float64, interp Interpolator[T]) {
	t := c.ClipTime(duration)
	if t <= 0 {
		return
	}
	if t >= 1 {
		*v = target
		return
	}
	*v = interp(*v, target, t)
}

// Move advances a scalar.
func Move(c *timeline.Clock, v *float64, target, duration float64, fn ease.Func) {
	MoveFunc(c, v, target, duration, Eased(fn, Lerp))
}

// MoveVec2 advances a 2D vector.
func MoveVec2(c *timeline.Clock, v *f64.Vec2, target f64.Vec2, duration float64, fn ease.Func) {
	MoveFunc(c, v, target, duration, Eased(fn, LerpVec2))
}

// MoveVec4 advances a 4D vector, typically a normalized RGBA color.
func MoveVec4(c *timeline.Clock, v *f64.Vec4, target f64.Vec4, duration float64, fn ease.Func) {
	MoveFunc(c, v, target, duration, Eased(fn, LerpVec4))
}

// MoveFrom sets *v to the eased value between from and to. Unlike Move it does
// not depend on the previous contents of *v, so replaying a frame any number
// of times yields the same value.
func MoveFrom(c *timeline.Clock, v *float64, from, to, duration float64, fn ease.Func) {
	t := c.ClipTime(duration)
	switch {
	case t <= 0:
		return
	case t >= 1:
		*v = to
	default:
		*v = Lerp(from, to, orLinear(fn)(t))
	}
}

// Eased wraps a linear interpolator so progress goes through fn first.
// A nil fn is linear.
func Eased[T any](fn ease.Func, lerp Interpolator[T]) Interpolator[T] {
	fn = orLinear(fn)
	return func(from, to T, t float64) T {
		return lerp(from, to, fn(t))
	}
}

func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

func LerpVec2(a, b f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t)}
}

func LerpVec4(a, b f64.Vec4, t float64) f64.Vec4 {
	return f64.Vec4{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
		Lerp(a[3], b[3], t),
	}
}

func orLinear(fn ease.Func) ease.Func {
	if fn == nil {
		return ease.Linear
	}
	return fn
}
