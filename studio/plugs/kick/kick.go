// Package kick is a coroutine-model scene: a square pops in, rounds off,
// spins to red and shrinks away, with a kick drum on every beat.
//
// The whole animation is one straight-line function running on a coroutine.
// Update resumes it once per frame and it runs until the next blocking tween.
package kick

import (
	"panim/studio/coro"
	"panim/studio/ease"
	"panim/studio/plug"
	"panim/studio/render"
	"panim/studio/sound"
)

const Name = "kick"

const (
	beat    = 0.15
	rest    = 0.25
	outro   = 2.0
	maxSize = 300.0
)

// Duration is the length of the animation in seconds.
const Duration = 4*beat + 3*rest + outro

var (
	background = render.Hex(0x181818FF)
	green      = render.Hex(0x73C936FF)
	red        = render.Hex(0xF43841FF)
)

// Shape is the animated state of the square. All fields are in [0, 1].
type Shape struct {
	Radius    float64
	Roundness float64
	Alpha     float64
	Rotation  float64
}

type Plug struct {
	sched *coro.Scheduler
	co    *coro.Coroutine
	env   plug.Env
	shape Shape
}

var _ plug.Plug = (*Plug)(nil)

// New creates the scene with its own scheduler.
func New(opts ...coro.Option) *Plug {
	p := &Plug{sched: coro.New(opts...)}
	p.Reset()
	return p
}

func (p *Plug) Name() string { return Name }

// Reset discards the running animation and spawns a fresh one.
// It must be called between frames.
func (p *Plug) Reset() {
	if p.co != nil {
		p.sched.Destroy(p.co)
	}
	p.co = p.sched.Spawn(p.animate, nil)
}

func (p *Plug) Finished() bool { return p.co.Finished() }

func (p *Plug) Shape() Shape { return p.shape }

func (p *Plug) Update(env plug.Env) {
	p.env = env
	p.sched.Step(p.co, env.DeltaTime)
	if env.Canvas != nil {
		p.draw(env.Canvas)
	}
}

// Close destroys the coroutine and the scheduler.
func (p *Plug) Close() error {
	if p.co != nil {
		p.sched.Destroy(p.co)
		p.co = nil
	}
	p.sched.Close()
	return nil
}

func (p *Plug) animate(s *coro.Scheduler, _ any) {
	sh := &p.shape
	*sh = Shape{}

	p.env.Play(sound.Kick)
	p.tween(s, coro.Track{Value: &sh.Radius, From: 0, To: 1})
	coro.Sleep(s, rest)

	p.env.Play(sound.Kick)
	p.tween(s, coro.Track{Value: &sh.Roundness, From: 0, To: 1})
	coro.Sleep(s, rest)

	p.env.Play(sound.Kick)
	p.tween(s,
		coro.Track{Value: &sh.Alpha, From: 0, To: 1},
		coro.Track{Value: &sh.Roundness, From: 1, To: 0},
		coro.Track{Value: &sh.Rotation, From: 0, To: 1},
	)
	coro.Sleep(s, rest)

	p.env.Play(sound.Kick)
	p.tween(s, coro.Track{Value: &sh.Radius, From: 1, To: 0})
	coro.Sleep(s, outro)
}

func (p *Plug) tween(s *coro.Scheduler, tracks ...coro.Track) {
	coro.Tween(s, beat, ease.Sqr, tracks...)
}

func (p *Plug) draw(cv *render.Canvas) {
	Draw(cv, p.shape)
}

// Draw paints sh centered on the canvas. The kick and kickreplay scenes
// share it.
func Draw(cv *render.Canvas, sh Shape) {
	cv.Clear(background)
	size := maxSize * sh.Radius
	col := render.Blend(green, render.Alpha(red, sh.Alpha))
	cx, cy := float64(cv.Width())/2, float64(cv.Height())/2
	cv.FillRoundRect(cx, cy, size, size, sh.Roundness, 45*sh.Rotation, col)
}
