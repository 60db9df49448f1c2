package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"panim/studio/coro"
	"panim/studio/render"

	"tinygo.org/x/tinyfont"
)

// PanicInfo describes a panic that escaped a frame.
type PanicInfo struct {
	// Coroutine is the id of the coroutine that panicked, 0 for the driver.
	Coroutine uint64
	Value     any
	Stack     []byte
}

func newPanicInfo(r any) PanicInfo {
	info := PanicInfo{Value: r, Stack: stackOf(r)}
	if pe, ok := r.(*coro.PanicError); ok {
		info.Coroutine = pe.ID
		info.Value = pe.Value
	}
	return info
}

func (p PanicInfo) Error() string {
	if p.Coroutine != 0 {
		return fmt.Sprintf("panic in coroutine %d: %v", p.Coroutine, p.Value)
	}
	return fmt.Sprintf("panic: %v", p.Value)
}

func (p PanicInfo) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

func (a *App) drawPanic() {
	cv := a.canvas
	if cv == nil || a.panicked == nil {
		return
	}
	cv.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})

	font := render.Font
	fontHeight, fontOffset := int16(11), int16(8)
	if f, ok := font.(*tinyfont.Font); ok && f.YAdvance > 0 {
		fontHeight = int16(f.YAdvance)
	}
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	lines := []string{
		"panim panic:",
		fmt.Sprintf("plug: %s", a.player.Current().Name()),
		a.panicked.Error(),
	}
	if len(a.panicked.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(a.panicked.Stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	maxH := int16(cv.Height())
	cols := int16(cv.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(cv, font, fontWidth, fontOffset, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

// drawTextLine draws s on a fixed-width grid so wrapped stack lines align.
func drawTextLine(
	d *render.Canvas,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	drawX := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, fg)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
