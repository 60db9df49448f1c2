package render

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Normalize converts a color to components in [0, 1].
func Normalize(c color.RGBA) f64.Vec4 {
	return f64.Vec4{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	}
}

// FromNormalized converts [0, 1] components back to a color, clamping.
func FromNormalized(v f64.Vec4) color.RGBA {
	ch := func(x float64) uint8 {
		return uint8(math.Round(clamp01(x) * 255))
	}
	return color.RGBA{R: ch(v[0]), G: ch(v[1]), B: ch(v[2]), A: ch(v[3])}
}

// Hex parses 0xRRGGBBAA.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// Gray returns an opaque gray of brightness v in [0, 1].
func Gray(v float64) color.RGBA {
	g := uint8(math.Round(clamp01(v) * 255))
	return color.RGBA{R: g, G: g, B: g, A: 0xFF}
}

// Alpha returns c with alpha scaled by a in [0, 1].
func Alpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(a)))
	return c
}

// Blend composites src over dst.
func Blend(dst, src color.RGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 0xFF}
}
