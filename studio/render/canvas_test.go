package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func newTestCanvas(w, h int) *Canvas {
	return NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func TestFillRoundRectCoversCenterNotCorners(t *testing.T) {
	c := newTestCanvas(40, 40)
	c.Clear(Gray(0))
	red := color.RGBA{R: 255, A: 255}
	c.FillRoundRect(20, 20, 30, 30, 1, 0, red)

	assert.Equal(t, red, c.Image().RGBAAt(20, 20))
	assert.Equal(t, Gray(0), c.Image().RGBAAt(6, 6))
}

func TestOriginShiftsShapes(t *testing.T) {
	c := newTestCanvas(20, 20)
	c.Clear(Gray(0))
	c.Origin = f64.Vec2{10, 10}
	c.FillRect(0, 0, 5, 5, Gray(1))

	assert.Equal(t, Gray(1), c.Image().RGBAAt(12, 12))
	assert.Equal(t, Gray(0), c.Image().RGBAAt(2, 2))
}

func TestTextDrawsPixels(t *testing.T) {
	c := newTestCanvas(80, 20)
	c.Clear(Gray(0))
	c.Text(2, 12, "panim", Gray(1))

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if c.Image().RGBAAt(x, y) != Gray(0) {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
	assert.Positive(t, TextWidth("panim"))
}

func TestSetPixelBlendsAndClips(t *testing.T) {
	c := newTestCanvas(4, 4)
	c.Clear(Gray(0))
	c.SetPixel(1, 1, color.RGBA{R: 255, A: 0x80})
	c.SetPixel(-1, 9, Gray(1))

	got := c.Image().RGBAAt(1, 1)
	assert.InDelta(t, 128, int(got.R), 1)
	assert.Equal(t, uint8(0xFF), got.A)
}

func TestNormalizedColors(t *testing.T) {
	c := Hex(0x73C936FF)
	assert.Equal(t, color.RGBA{R: 0x73, G: 0xC9, B: 0x36, A: 0xFF}, c)
	assert.Equal(t, c, FromNormalized(Normalize(c)))
	assert.Equal(t, color.RGBA{R: 255, A: 0}, FromNormalized(f64.Vec4{2, -1, 0, 0}))
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 127, A: 255}, Blend(color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 128}))
}

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ffffff"/></svg>`

func TestDrawIcon(t *testing.T) {
	icon, err := ParseIcon(square)
	require.NoError(t, err)

	c := newTestCanvas(20, 20)
	c.Clear(Gray(0))
	c.DrawIcon(icon, 5, 5, 10, 10, 1)
	assert.Equal(t, Gray(1), c.Image().RGBAAt(10, 10))
	assert.Equal(t, Gray(0), c.Image().RGBAAt(1, 1))
}
