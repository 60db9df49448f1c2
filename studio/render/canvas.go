// Package render paints scenes into an RGBA frame.
//
// Shapes go through rasterx, icons through oksvg and text through tinyfont,
// so the same Canvas serves a window, a headless run and tests.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/f64"
	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas draws into an *image.RGBA.
type Canvas struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler

	// Origin is added to every shape coordinate.
	Origin f64.Vec2
}

// NewCanvas returns a canvas over img.
func NewCanvas(img *image.RGBA) *Canvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	sc := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Canvas{
		img:     img,
		scanner: sc,
		filler:  rasterx.NewFiller(w, h, sc),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Clear fills the whole frame.
func (c *Canvas) Clear(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// FillRect fills an axis-aligned rectangle given by its top-left corner.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	x, y = x+c.Origin[0], y+c.Origin[1]
	c.fill(col, func(f *rasterx.Filler) {
		rasterx.AddRect(x, y, x+w, y+h, 0, f)
	})
}

// FillRoundRect fills a rectangle centered on (cx, cy), rotated by rot
// degrees about its center. roundness in [0, 1] is the corner radius as a
// fraction of half the shorter side.
func (c *Canvas) FillRoundRect(cx, cy, w, h, roundness, rot float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	cx, cy = cx+c.Origin[0], cy+c.Origin[1]
	r := clamp01(roundness) * math.Min(w, h) / 2
	c.fill(col, func(f *rasterx.Filler) {
		rasterx.AddRoundRect(cx-w/2, cy-h/2, cx+w/2, cy+h/2, r, r, rot, rasterx.RoundGap, f)
	})
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	cx, cy = cx+c.Origin[0], cy+c.Origin[1]
	c.fill(col, func(f *rasterx.Filler) {
		rasterx.AddCircle(cx, cy, r, f)
	})
}

func (c *Canvas) fill(col color.RGBA, add func(*rasterx.Filler)) {
	c.filler.Clear()
	c.filler.SetColor(col)
	add(c.filler)
	c.filler.Draw()
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	return int16(c.Width()), int16(c.Height())
}

// SetPixel implements drivers.Displayer, blending c over the frame.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	px, py := int(x), int(y)
	if !(image.Point{X: px, Y: py}).In(c.img.Bounds()) {
		return
	}
	if col.A == 0xFF {
		c.img.SetRGBA(px, py, col)
		return
	}
	dst := c.img.RGBAAt(px, py)
	a := uint32(col.A)
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	c.img.SetRGBA(px, py, color.RGBA{
		R: blend(col.R, dst.R),
		G: blend(col.G, dst.G),
		B: blend(col.B, dst.B),
		A: 0xFF,
	})
}

// Display implements drivers.Displayer. Frames are presented by the host.
func (c *Canvas) Display() error { return nil }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
