// Package squares is a replay-model scene: three squares trade places and
// flash colors, three times over, then rest.
package squares

import (
	"image/color"

	"panim/studio/ease"
	"panim/studio/plug"
	"panim/studio/render"
	"panim/studio/timeline"
	"panim/studio/tween"

	"golang.org/x/image/math/f64"
)

const Name = "squares"

const (
	count      = 3
	size       = 100.0
	pad        = size * 0.2
	stepTime   = 0.25
	restTime   = 1.0
	shuffleLen = 4 * stepTime
)

var (
	background = render.Gray(0.05)
	foreground = render.Normalize(render.Gray(0.95))

	red   = render.Normalize(color.RGBA{R: 230, G: 41, B: 55, A: 255})
	green = render.Normalize(color.RGBA{R: 0, G: 228, B: 48, A: 255})
	blue  = render.Normalize(color.RGBA{R: 0, G: 121, B: 241, A: 255})
)

// Duration is the length of one full pass of the scene in seconds.
const Duration = 3*shuffleLen + restTime

type Square struct {
	Position f64.Vec2
	Color    f64.Vec4
}

type Plug struct {
	clock    timeline.Clock
	squares  [count]Square
	finished bool
}

var _ plug.Plug = (*Plug)(nil)

func New() *Plug {
	p := &Plug{}
	p.Reset()
	return p
}

func (p *Plug) Name() string { return Name }

func (p *Plug) Reset() {
	p.clock.Restart()
	p.home()
	p.finished = false
}

func (p *Plug) Finished() bool { return p.finished }

// Squares returns the current square states.
func (p *Plug) Squares() [count]Square { return p.squares }

func (p *Plug) Update(env plug.Env) {
	p.clock.Advance(env.DeltaTime)
	p.script()
	p.finished = p.clock.Finished()
	if env.Canvas != nil {
		p.draw(env.Canvas)
	}
}

// home puts the squares on their starting cells.
func (p *Plug) home() {
	for i := range p.squares {
		p.squares[i] = Square{Position: grid(i/2, i%2), Color: foreground}
	}
}

func (p *Plug) script() {
	c := &p.clock
	p.home()

	s1, s2, s3 := &p.squares[0], &p.squares[1], &p.squares[2]
	shuffle(c, s1, s2, s3)
	c.WaitForEnd()
	shuffle(c, s2, s3, s1)
	c.WaitForEnd()
	shuffle(c, s3, s1, s2)
	c.WaitForEnd()
	c.Wait(restTime)
	c.WaitForEnd()
}

func shuffle(c *timeline.Clock, s1, s2, s3 *Square) {
	fn := ease.Smoothstep

	tween.MoveVec2(c, &s1.Position, grid(1, 1), stepTime, fn)
	tween.MoveVec2(c, &s2.Position, grid(0, 0), stepTime, fn)
	tween.MoveVec2(c, &s3.Position, grid(0, 1), stepTime, fn)
	c.WaitForEnd()

	tween.MoveVec4(c, &s1.Color, red, stepTime, fn)
	tween.MoveVec4(c, &s2.Color, green, stepTime, fn)
	tween.MoveVec4(c, &s3.Color, blue, stepTime, fn)
	c.WaitForEnd()

	tween.MoveVec2(c, &s1.Position, grid(1, 0), stepTime, fn)
	c.WaitForEnd()

	for _, s := range []*Square{s1, s2, s3} {
		tween.MoveVec4(c, &s.Color, foreground, stepTime, fn)
	}
	c.WaitForEnd()
}

func grid(row, col int) f64.Vec2 {
	return f64.Vec2{float64(col) * (size + pad), float64(row) * (size + pad)}
}

func (p *Plug) draw(cv *render.Canvas) {
	cv.Clear(background)
	cv.Origin = f64.Vec2{
		float64(cv.Width())/2 - size - pad/2,
		float64(cv.Height())/2 - size - pad/2,
	}
	for _, s := range p.squares {
		cv.FillRect(s.Position[0], s.Position[1], size, size, render.FromNormalized(s.Color))
	}
	cv.Origin = f64.Vec2{}
}
