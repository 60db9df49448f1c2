package hal

import (
	"fmt"
	"log/slog"
)

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	t   *hostTime
	aud Audio
}

// New returns a host HAL implementation. Audio that fails to start is
// logged and left disabled.
func New(cfg Config) HAL {
	return newHost(cfg)
}

func newHost(cfg Config) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	h := &hostHAL{
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		kbd: newHostKeyboard(),
		t:   &hostTime{},
	}
	if cfg.Audio {
		aud, err := newHostAudio(cfg.SampleRate, cfg.Volume)
		if err != nil {
			slog.Warn("hal: audio disabled", "err", err)
		} else {
			h.aud = aud
		}
	}
	return h
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Audio() Audio     { return h.aud }

func (h *hostHAL) close() error {
	if h.aud == nil {
		return nil
	}
	if err := h.aud.Close(); err != nil {
		return fmt.Errorf("hal: close audio: %w", err)
	}
	return nil
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
