package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the HUD font.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Text writes s with its baseline at (x, y).
func (c *Canvas) Text(x, y int16, s string, col color.RGBA) {
	tinyfont.WriteLine(c, Font, x, y, s, col)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}
