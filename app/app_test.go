package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"testing"

	"panim/hal"
	"panim/internal/config"
	"panim/studio/plug"
	"panim/studio/plugs/squares"
	"panim/studio/render"
	"panim/studio/sound"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFB struct{ img *image.RGBA }

func (f fakeFB) Width() int              { return f.img.Bounds().Dx() }
func (f fakeFB) Height() int             { return f.img.Bounds().Dy() }
func (f fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f fakeFB) Image() *image.RGBA      { return f.img }
func (f fakeFB) Present() error          { return nil }

type fakeKeyboard chan hal.KeyEvent

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k }

type fakeAudio struct{ clips int }

func (a *fakeAudio) SampleRate() int       { return 8000 }
func (a *fakeAudio) Play(pcm []byte) error { a.clips++; return nil }
func (a *fakeAudio) SetVolume(float64)     {}
func (a *fakeAudio) Close() error          { return nil }

type fakeHAL struct {
	fb  fakeFB
	kbd fakeKeyboard
	aud *fakeAudio
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:  fakeFB{img: image.NewRGBA(image.Rect(0, 0, 320, 240))},
		kbd: make(fakeKeyboard, 8),
		aud: &fakeAudio{},
	}
}

func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return nil }
func (h *fakeHAL) Audio() hal.Audio     { return h.aud }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h.kbd }

type panicPlug struct{ err error }

func (p panicPlug) Name() string      { return "boom" }
func (p panicPlug) Reset()            {}
func (p panicPlug) Update(plug.Env)   { panic(p.err) }
func (p panicPlug) Finished() bool    { return false }

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)) }

func TestStepPlaysScenesAndSounds(t *testing.T) {
	h := newFakeHAL()
	cfg := config.Default()
	cfg.Player.Plugs = []string{"kick", "kickreplay"}
	a, err := New(h, Options{Config: cfg, Logger: quiet()})
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	for i := 0; i < 30; i++ {
		require.NoError(t, a.Step(1.0/30))
	}
	assert.Equal(t, 3, h.aud.clips)
	assert.Len(t, a.sounds, 1)
	assert.Equal(t, "kick", a.Player().Current().Name())
}

func TestKeysDrivePlayer(t *testing.T) {
	h := newFakeHAL()
	a, err := New(h, Options{Config: config.Default(), Logger: quiet()})
	require.NoError(t, err)
	defer a.Close()

	h.kbd <- hal.KeyEvent{Code: hal.KeyN, Press: true}
	h.kbd <- hal.KeyEvent{Code: hal.KeyN, Press: false}
	require.NoError(t, a.Step(0.01))
	assert.Equal(t, "kick", a.Player().Current().Name())

	h.kbd <- hal.KeyEvent{Code: hal.KeySpace, Press: true}
	require.NoError(t, a.Step(0.01))
	assert.True(t, a.Player().Paused())
}

func TestStartSelectsPlug(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Start = "kickreplay"
	a, err := New(newFakeHAL(), Options{Config: cfg, Logger: quiet()})
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, "kickreplay", a.Player().Current().Name())
}

func TestUnknownPlug(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Plugs = []string{"kick", "nope"}
	_, err := New(newFakeHAL(), Options{Config: cfg, Logger: quiet()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown plug "nope"`)
}

func panicRegistry(err error) *plug.Registry {
	r := plug.NewRegistry()
	r.Register("boom", func() plug.Plug { return panicPlug{err: err} })
	return r
}

func TestPanicReturnedWithoutScreen(t *testing.T) {
	boom := errors.New("boom")
	cfg := config.Default()
	cfg.Player.Plugs = []string{"boom"}
	a, err := New(newFakeHAL(), Options{Config: cfg, Logger: quiet(), Registry: panicRegistry(boom)})
	require.NoError(t, err)

	err = a.Step(0.1)
	assert.ErrorIs(t, err, boom)
	var info PanicInfo
	require.ErrorAs(t, err, &info)
	assert.NotEmpty(t, info.Stack)
}

func TestPanicScreen(t *testing.T) {
	h := newFakeHAL()
	cfg := config.Default()
	cfg.Player.Plugs = []string{"boom"}
	a, err := New(h, Options{Config: cfg, Logger: quiet(), PanicScreen: true, Registry: panicRegistry(errors.New("boom"))})
	require.NoError(t, err)

	require.NoError(t, a.Step(0.1))
	require.NoError(t, a.Step(0.1))
	img := h.fb.img
	white, dark := 0, 0
	for x := 0; x < img.Bounds().Dx(); x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			switch img.RGBAAt(x, y) {
			case render.Gray(1):
				white++
			case render.Gray(0):
				dark++
			}
		}
	}
	assert.Positive(t, dark)
	assert.Greater(t, white, dark)
}

func TestDump(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Plugs = []string{squares.Name}
	a, err := New(newFakeHAL(), Options{Config: cfg, Logger: quiet()})
	require.NoError(t, err)
	require.NoError(t, a.Step(0.5))

	var buf bytes.Buffer
	a.Dump(&buf)
	assert.Contains(t, buf.String(), "into squares")
	assert.Contains(t, buf.String(), "Position")
}

func TestRunsUnderHeadlessHost(t *testing.T) {
	cfg := config.Default()
	var app *App
	err := hal.RunHeadless(context.Background(), hal.HeadlessConfig{Hz: 60, Ticks: 300, Fast: true},
		hal.Config{Width: 160, Height: 120},
		func(h hal.HAL) hal.StepFunc {
			a, err := New(h, Options{Config: cfg, Logger: quiet()})
			require.NoError(t, err)
			app = a
			return a.Step
		})
	require.NoError(t, err)
	defer app.Close()
	assert.Equal(t, uint64(300), app.Player().Frames())
	assert.Equal(t, "kick", app.Player().Current().Name())
}

func TestDefaultPlugsRegistered(t *testing.T) {
	cfg := config.Default()
	r := Registry(cfg)
	assert.Contains(t, r.Names(), "turing")
	for _, name := range cfg.Player.Plugs {
		p, err := r.New(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}
}

func TestTuringPlaysWriteBlip(t *testing.T) {
	h := newFakeHAL()
	cfg := config.Default()
	cfg.Player.Plugs = []string{"turing"}
	a, err := New(h, Options{Config: cfg, Logger: quiet()})
	require.NoError(t, err)
	defer a.Close()

	// The first write is halfway through the first machine step, just
	// under four seconds in.
	for i := 0; i < 130; i++ {
		require.NoError(t, a.Step(1.0/30))
	}
	assert.Equal(t, 1, h.aud.clips)
	assert.NotEmpty(t, a.sounds[sound.Write])
}
