// Package ease provides the interpolation curves used by tweens.
//
// A Func maps linear progress in [0, 1] to eased progress. Every curve maps
// 0 to 0 and 1 to 1 exactly; callers still snap to the target at progress 1.
package ease

import (
	"math"
	"sort"
	"strings"
)

// Func is an easing curve.
type Func func(t float64) float64

func Linear(t float64) float64 { return t }

func Sqr(t float64) float64 { return t * t }

func Sqrt(t float64) float64 { return math.Sqrt(t) }

// Smoothstep is 3t^2 - 2t^3.
func Smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

// Smootherstep is 6t^5 - 15t^4 + 10t^3.
func Smootherstep(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

// Sinstep eases in and out along a half cosine.
func Sinstep(t float64) float64 { return (1 - math.Cos(t*math.Pi)) / 2 }

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

var byName = map[string]Func{
	"linear":       Linear,
	"id":           Linear,
	"sqr":          Sqr,
	"sqrt":         Sqrt,
	"smoothstep":   Smoothstep,
	"smootherstep": Smootherstep,
	"sinstep":      Sinstep,
	"inoutcubic":   InOutCubic,
}

// Lookup returns the curve registered under name (case-insensitive).
func Lookup(name string) (Func, bool) {
	fn, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
