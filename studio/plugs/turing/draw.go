package turing

import (
	"image/color"
	"math"

	"panim/studio/render"
	"panim/studio/tween"
)

// Scene units. The camera maps them onto a 1600x900 reference frame scaled to
// the canvas.
const (
	cellW     = 200.0
	cellH     = 200.0
	cellPad   = cellW * 0.15
	headThick = 20.0
	headPad   = headThick * 2.5

	tableTop   = 300.0
	tableRight = 70.0
	fieldW     = 20.0*9 + cellPad*0.5
	fieldH     = 15.0*9 + cellPad*0.5
	lineThick  = 7.0
)

var (
	background = render.Gray(0.12)
	cellColor  = render.Gray(0.85)
	headColor  = render.Hex(0x2996CCFF)
)

type camera struct {
	tx, ty float64
	ox, oy float64
	zoom   float64
}

func (cam camera) point(x, y float64) (float64, float64) {
	return (x-cam.tx)*cam.zoom + cam.ox, (y-cam.ty)*cam.zoom + cam.oy
}

func (cam camera) rect(cv *render.Canvas, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 || col.A == 0 {
		return
	}
	sx, sy := cam.point(x, y)
	sw, sh := w*cam.zoom, h*cam.zoom
	if sx+sw < 0 || sy+sh < 0 || sx > float64(cv.Width()) || sy > float64(cv.Height()) {
		return
	}
	cv.FillRect(sx, sy, sw, sh, col)
}

// text centers s in the given rectangle.
func (cam camera) text(cv *render.Canvas, x, y, w, h float64, s string, col color.RGBA) {
	if s == "" || col.A == 0 {
		return
	}
	cx, cy := cam.point(x+w/2, y+h/2)
	cv.Text(int16(cx)-int16(render.TextWidth(s)/2), int16(cy)+3, s, col)
}

// cell draws c.A fading out as c.B fades in.
func (cam camera) cell(cv *render.Canvas, x, y, w, h float64, c Cell, col color.RGBA) {
	cam.text(cv, x, y, w, h, c.A, render.Alpha(col, 1-c.T))
	if c.T > 0 {
		cam.text(cv, x, y, w, h, c.B, render.Alpha(col, c.T))
	}
}

// lines draws a cols x rows grid whose strokes grow in with t.
func (cam camera) lines(cv *render.Canvas, x, y, fw, fh float64, cols, rows int, t, thick float64, col color.RGBA) {
	thick *= t
	if thick <= 0 {
		return
	}
	for i := 0; i <= rows; i++ {
		x0, x1 := x-thick/2, x+fw*float64(cols)+thick/2
		if i == rows {
			x0, x1 = x1, x0
		}
		x1 = tween.Lerp(x0, x1, t)
		cam.rect(cv, math.Min(x0, x1), y+float64(i)*fh-thick/2, math.Abs(x1-x0), thick, col)
	}
	for i := 0; i <= cols; i++ {
		y0, y1 := y, y+fh*float64(rows)
		if i > 0 {
			y0, y1 = y1, y0
		}
		y1 = tween.Lerp(y0, y1, t)
		cam.rect(cv, x+float64(i)*fw-thick/2, math.Min(y0, y1), thick, math.Abs(y1-y0), col)
	}
}

func (p *Plug) draw(cv *render.Canvas) {
	s := &p.scene
	cv.Clear(background)

	w, h := float64(cv.Width()), float64(cv.Height())
	headW, headH := cellW+headPad, cellH+headPad
	pos := float64(s.Head.Index) + s.Head.Offset
	headX := cellW/2 - headW/2 + tween.Lerp(-20, pos, s.T)*(cellW+cellPad)
	headY := cellH/2 - headH/2

	cam := camera{
		tx:   headX + headW/2,
		ty:   headY + headH/2 - s.TapeYOffset,
		ox:   w / 2,
		oy:   h / 2,
		zoom: tween.Lerp(0.5, 0.93, s.T) * math.Min(w/1600, h/900),
	}

	for i, c := range s.Tape {
		x := float64(i) * (cellW + cellPad)
		cam.rect(cv, x, 0, cellW, cellH, cellColor)
		cam.cell(cv, x, 0, cellW, cellH, c, background)
	}

	// The state label slides out from under the head.
	stateH := headH * 0.5
	stateY := headY + headH - stateH*(1-s.Head.StateT)
	if s.Head.StateT > 0 {
		cam.cell(cv, headX, stateY, headW, stateH, s.Head.State, render.Alpha(cellColor, s.Head.StateT))
	}
	frameH := headH
	if bottom := stateY + stateH; bottom > headY+headH {
		frameH += bottom - (headY + headH)
	}
	cam.lines(cv, headX, headY, headW, frameH, 1, 1, s.T, headThick, headColor)

	tx := headX + headW/2 - (fieldW*columns+tableRight)/2
	ty := headY + headH + tableTop
	fieldX := func(j int) float64 {
		x := tx + float64(j)*fieldW
		if j >= colWrite {
			x += tableRight
		}
		return x
	}
	for i, r := range s.Table.Rules {
		y := ty + float64(i)*fieldH
		for j, sym := range r.Symbols {
			x := fieldX(j)
			if b := r.Bump[j]; b > 0 {
				b *= b
				grow := (1 - b) * fieldW * 0.25
				cam.rect(cv, x-grow, y-grow, fieldW+2*grow, fieldH+2*grow,
					render.Alpha(headColor, s.Table.SymbolsT*b*0.5))
			}
			cam.text(cv, x, y, fieldW, fieldH, sym, render.Alpha(cellColor, s.Table.SymbolsT))
		}
	}

	rows := len(s.Table.Rules)
	cam.lines(cv, tx, ty, fieldW, fieldH, 2, rows, s.Table.LinesT, lineThick, cellColor)
	cam.lines(cv, fieldX(colWrite), ty, fieldW, fieldH, 3, rows, s.Table.LinesT, lineThick, cellColor)
	cam.lines(cv,
		tx-headPad/2, ty-headPad/2+s.Table.HeadOffsetT*fieldH,
		2*fieldW+headPad, fieldH+headPad,
		1, 1, s.Table.HeadT, headThick, headColor)
}
