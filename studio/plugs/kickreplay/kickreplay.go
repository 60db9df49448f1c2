// Package kickreplay is the kick scene written for the replay model. The
// script is re-run from the top every frame against a timeline clock, and
// kicks are gated on the frame each beat starts.
package kickreplay

import (
	"panim/studio/plug"
	"panim/studio/plugs/kick"
	"panim/studio/sound"
	"panim/studio/timeline"
	"panim/studio/tween"
)

const Name = "kickreplay"

const (
	beat     = 0.15
	rest     = 0.25
	outro    = 2.0
	kickSpan = 0.1
)

const Duration = 4*beat + 3*rest + outro

type Plug struct {
	clock    timeline.Clock
	shape    kick.Shape
	finished bool
}

var _ plug.Plug = (*Plug)(nil)

func New() *Plug { return &Plug{} }

func (p *Plug) Name() string { return Name }

func (p *Plug) Reset() {
	p.clock.Restart()
	p.shape = kick.Shape{}
	p.finished = false
}

func (p *Plug) Finished() bool { return p.finished }

func (p *Plug) Shape() kick.Shape { return p.shape }

func (p *Plug) Update(env plug.Env) {
	p.clock.Advance(env.DeltaTime)
	p.script(env)
	p.finished = p.clock.Finished()
	if env.Canvas != nil {
		kick.Draw(env.Canvas, p.shape)
	}
}

func (p *Plug) script(env plug.Env) {
	c := &p.clock
	sh := &p.shape
	*sh = kick.Shape{}

	p.kick(env)
	move(c, &sh.Radius, 0, 1)
	c.Wait(rest)

	p.kick(env)
	move(c, &sh.Roundness, 0, 1)
	c.Wait(rest)

	p.kick(env)
	tween.MoveFrom(c, &sh.Alpha, 0, 1, beat, nil)
	tween.MoveFrom(c, &sh.Roundness, 1, 0, beat, nil)
	tween.MoveFrom(c, &sh.Rotation, 0, 1, beat, nil)
	c.WaitForEnd()
	c.Wait(rest)

	p.kick(env)
	move(c, &sh.Radius, 1, 0)
	c.Wait(outro)
	c.WaitForEnd()
}

func (p *Plug) kick(env plug.Env) {
	if p.clock.Started(kickSpan) {
		env.Play(sound.Kick)
	}
}

func move(c *timeline.Clock, v *float64, from, to float64) {
	tween.MoveFrom(c, v, from, to, beat, nil)
	c.WaitForEnd()
}
