// Package player drives a list of plugs from the host frame loop.
//
// Each frame the active plug gets an Env carrying the elapsed time. When it
// reports Finished the player either restarts it or moves on to the next
// plug. Sound triggers raised during the update are queued and handed to the
// sink after the plug returns, so a scene never blocks on audio.
package player

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"panim/studio/plug"
	"panim/studio/render"
	"panim/studio/sound"
)

// Input is the set of player controls pressed this frame.
type Input struct {
	Restart bool
	Next    bool
	Pause   bool
}

type Option func(*Player)

// WithLoop makes a finished plug restart instead of advancing.
func WithLoop(on bool) Option { return func(p *Player) { p.loop = on } }

// WithSink sets where sound triggers go.
func WithSink(s sound.Sink) Option { return func(p *Player) { p.sink = s } }

// WithHUD toggles the overlay with the plug name and time.
func WithHUD(on bool) Option { return func(p *Player) { p.hud = on } }

func WithLogger(l *slog.Logger) Option { return func(p *Player) { p.log = l } }

type Player struct {
	plugs  []plug.Plug
	index  int
	loop   bool
	paused bool
	hud    bool
	time   float64
	frames uint64

	queue sound.Queue
	sink  sound.Sink
	log   *slog.Logger
}

// New returns a player over plugs, starting with the first one.
func New(plugs []plug.Plug, opts ...Option) (*Player, error) {
	if len(plugs) == 0 {
		return nil, errors.New("player: no plugs")
	}
	p := &Player{plugs: plugs, hud: true, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Current returns the active plug.
func (p *Player) Current() plug.Plug { return p.plugs[p.index] }

func (p *Player) Index() int     { return p.index }
func (p *Player) Paused() bool   { return p.paused }
func (p *Player) Frames() uint64 { return p.frames }

// Time returns how long the active plug has been playing.
func (p *Player) Time() float64 { return p.time }

// Select makes the plug with the given name active and resets it.
func (p *Player) Select(name string) error {
	for i, pl := range p.plugs {
		if pl.Name() == name {
			p.switchTo(i)
			return nil
		}
	}
	return fmt.Errorf("player: no plug named %q", name)
}

// Restart rewinds the active plug.
func (p *Player) Restart() {
	p.Current().Reset()
	p.time = 0
	p.log.Debug("player: restart", "plug", p.Current().Name())
}

// Next resets and activates the following plug, wrapping around.
func (p *Player) Next() {
	p.switchTo((p.index + 1) % len(p.plugs))
}

func (p *Player) TogglePause() { p.paused = !p.paused }

func (p *Player) switchTo(i int) {
	p.index = i
	p.Restart()
	p.log.Info("player: plug", "name", p.Current().Name(), "index", i)
}

// Update runs one frame. canvas may be nil in headless runs.
func (p *Player) Update(dt float64, in Input, canvas *render.Canvas) {
	switch {
	case in.Restart:
		p.Restart()
	case in.Next:
		p.Next()
	}
	if in.Pause {
		p.TogglePause()
	}
	if p.paused || dt < 0 {
		dt = 0
	}

	env := plug.Env{
		DeltaTime: dt,
		Canvas:    canvas,
		PlaySound: p.queue.Play,
	}
	if canvas != nil {
		env.Width, env.Height = canvas.Width(), canvas.Height()
	}

	cur := p.Current()
	cur.Update(env)
	p.time += dt
	p.frames++

	if cur.Finished() {
		p.log.Debug("player: finished", "plug", cur.Name(), "time", p.time)
		if p.loop || len(p.plugs) == 1 {
			p.Restart()
		} else {
			p.Next()
		}
	}

	p.queue.Drain(p.sink)

	if p.hud && canvas != nil {
		p.drawHUD(canvas)
	}
}

var hudColor = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

func (p *Player) drawHUD(cv *render.Canvas) {
	icon := pauseIcon
	if p.paused {
		icon = playIcon
	}
	cv.DrawIcon(icon, 8, 8, 16, 16, 0.8)

	label := fmt.Sprintf("%s  %d/%d  %.2fs", p.Current().Name(), p.index+1, len(p.plugs), p.time)
	cv.Text(30, 20, label, hudColor)
}

// Close releases plugs that hold resources.
func (p *Player) Close() error {
	var errs []error
	for _, pl := range p.plugs {
		if c, ok := pl.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("player: close %s: %w", pl.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}
