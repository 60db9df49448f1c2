// Package app wires the player, the scenes and the host devices together.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"panim/hal"
	"panim/internal/config"
	"panim/studio/coro"
	"panim/studio/plug"
	"panim/studio/plugs/kick"
	"panim/studio/plugs/kickreplay"
	"panim/studio/plugs/squares"
	"panim/studio/plugs/turing"
	"panim/studio/player"
	"panim/studio/render"
	"panim/studio/sound"

	"github.com/davecgh/go-spew/spew"
)

type Options struct {
	Config config.Config
	Logger *slog.Logger
	// PanicScreen keeps the app alive after a panic and paints the panic
	// on the framebuffer. Without it the panic is returned as an error.
	PanicScreen bool
	// Registry overrides the built-in scenes.
	Registry *plug.Registry
}

type App struct {
	h      hal.HAL
	log    *slog.Logger
	canvas *render.Canvas
	player *player.Player
	sounds map[sound.ID][]byte

	panicScreen bool
	panicked    *PanicInfo
}

// Registry returns the scenes this build knows about.
func Registry(cfg config.Config) *plug.Registry {
	r := plug.NewRegistry()
	r.Register(squares.Name, func() plug.Plug { return squares.New() })
	r.Register(kick.Name, func() plug.Plug {
		return kick.New(
			coro.WithStackCapacity(cfg.Coroutine.StackPages*os.Getpagesize()),
			coro.WithGuard(cfg.Coroutine.Guard),
		)
	})
	r.Register(kickreplay.Name, func() plug.Plug { return kickreplay.New() })
	r.Register(turing.Name, func() plug.Plug { return turing.New() })
	return r
}

func New(h hal.HAL, opts Options) (*App, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	reg := opts.Registry
	if reg == nil {
		reg = Registry(cfg)
	}
	plugs := make([]plug.Plug, 0, len(cfg.Player.Plugs))
	for _, name := range cfg.Player.Plugs {
		p, err := reg.New(name)
		if err != nil {
			closePlugs(plugs)
			return nil, fmt.Errorf("app: %w", err)
		}
		plugs = append(plugs, p)
	}

	a := &App{
		h:           h,
		log:         log,
		sounds:      make(map[sound.ID][]byte),
		panicScreen: opts.PanicScreen,
	}
	if aud := h.Audio(); aud != nil {
		clips := []struct {
			id   sound.ID
			path string
		}{
			{sound.Kick, cfg.Audio.Kick},
			{sound.Write, cfg.Audio.Write},
		}
		for _, c := range clips {
			if c.path == "" {
				continue
			}
			pcm, err := loadClip(c.path, aud.SampleRate())
			if err != nil {
				closePlugs(plugs)
				return nil, fmt.Errorf("app: %s clip: %w", c.id, err)
			}
			a.sounds[c.id] = pcm
		}
	}
	if d := h.Display(); d != nil && d.Framebuffer() != nil {
		a.canvas = render.NewCanvas(d.Framebuffer().Image())
	}

	pl, err := player.New(plugs,
		player.WithLoop(cfg.Player.Loop),
		player.WithHUD(cfg.Player.HUD),
		player.WithSink(sound.SinkFunc(a.playSound)),
		player.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if cfg.Player.Start != "" {
		if err := pl.Select(cfg.Player.Start); err != nil {
			_ = pl.Close()
			return nil, fmt.Errorf("app: %w", err)
		}
	}
	a.player = pl
	log.Info("app: ready", "plugs", cfg.Player.Plugs, "first", pl.Current().Name())
	return a, nil
}

// Step runs one frame.
func (a *App) Step(dt float64) (err error) {
	if a.panicked != nil {
		a.drawPanic()
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		info := newPanicInfo(r)
		a.log.Error("app: panic", "plug", a.player.Current().Name(), "panic", info.Value)
		a.log.Debug(string(info.Stack))
		if !a.panicScreen {
			err = fmt.Errorf("app: %s: %w", a.player.Current().Name(), info)
			return
		}
		a.panicked = &info
		a.drawPanic()
	}()

	a.player.Update(dt, a.input(), a.canvas)
	return nil
}

// input collects the key presses queued since the last frame.
func (a *App) input() player.Input {
	var in player.Input
	ip := a.h.Input()
	if ip == nil || ip.Keyboard() == nil {
		return in
	}
	ch := ip.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyR:
				in.Restart = true
			case hal.KeyN, hal.KeyRight:
				in.Next = true
			case hal.KeySpace:
				in.Pause = !in.Pause
			}
		default:
			return in
		}
	}
}

func (a *App) playSound(id sound.ID) {
	aud := a.h.Audio()
	if aud == nil {
		a.log.Debug("app: sound", "id", id)
		return
	}
	pcm, ok := a.sounds[id]
	if !ok {
		pcm = sound.StereoPCM16(sound.Samples(id, aud.SampleRate()))
		a.sounds[id] = pcm
	}
	if len(pcm) == 0 {
		return
	}
	if err := aud.Play(pcm); err != nil {
		a.log.Warn("app: play sound", "id", id, "err", err)
	}
}

// Player exposes the driven player.
func (a *App) Player() *player.Player { return a.player }

// Dump writes the state of the active scene.
func (a *App) Dump(w io.Writer) {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, MaxDepth: 6}
	fmt.Fprintf(w, "frame %d, %.3fs into %s\n", a.player.Frames(), a.player.Time(), a.player.Current().Name())
	cfg.Fdump(w, a.player.Current())
}

func (a *App) Close() error {
	return a.player.Close()
}

func loadClip(path string, sampleRate int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeWAV(f, sampleRate)
}

func closePlugs(plugs []plug.Plug) {
	for _, p := range plugs {
		if c, ok := p.(io.Closer); ok {
			_ = c.Close()
		}
	}
}

// Stack returns the goroutine stack for a recovered value.
func stackOf(r any) []byte {
	if pe, ok := r.(*coro.PanicError); ok && len(pe.Stack) > 0 {
		return pe.Stack
	}
	return debug.Stack()
}
