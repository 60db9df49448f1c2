// Package hal is the only contact point between the player and the host:
// a framebuffer to draw into, keyboard events, a frame clock and audio out.
package hal

import (
	"errors"
	"image"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, byte order R, G, B, A.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	// Image exposes the pixels. It stays valid for the lifetime of the HAL.
	Image() *image.RGBA
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeySpace
	KeyR
	KeyN
	KeyRight
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time is the frame clock. It advances once per frame by the delta handed to
// the step function.
type Time interface {
	Frames() uint64
	Seconds() float64
}

// Audio plays interleaved 16-bit little-endian stereo PCM clips.
type Audio interface {
	SampleRate() int
	// Play starts pcm immediately, mixing with clips already playing.
	Play(pcm []byte) error
	SetVolume(v float64)
	Close() error
}

// HAL bundles the host devices.
type HAL interface {
	Display() Display
	Input() Input
	Time() Time
	// Audio is nil when sound is disabled.
	Audio() Audio
}

// Config describes the host devices to create.
type Config struct {
	Width, Height int
	Scale         float64
	Title         string
	TPS           int

	Audio      bool
	SampleRate int
	Volume     float64
}

// StepFunc advances the application by one frame of dt seconds.
type StepFunc func(dt float64) error
