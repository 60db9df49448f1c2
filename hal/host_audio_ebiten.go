//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays clips through Ebiten's audio package. Every Play gets its
// own player so overlapping clips mix.
type hostAudio struct {
	mu      sync.Mutex
	ctx     *audio.Context
	vol     float64
	playing []*audio.Player
	closed  bool
}

func newHostAudio(sampleRate int, volume float64) (*hostAudio, error) {
	if sampleRate <= 0 {
		return nil, errors.New("host audio: invalid sample rate")
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	return &hostAudio{ctx: ctx, vol: volume}, nil
}

func (a *hostAudio) SampleRate() int { return a.ctx.SampleRate() }

func (a *hostAudio) Play(pcm []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return errors.New("host audio: closed")
	}
	a.reap()

	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.vol)
	p.Play()
	a.playing = append(a.playing, p)
	return nil
}

// reap closes players that ran to the end. Callers hold a.mu.
func (a *hostAudio) reap() {
	live := a.playing[:0]
	for _, p := range a.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(live); i < len(a.playing); i++ {
		a.playing[i] = nil
	}
	a.playing = live
}

func (a *hostAudio) SetVolume(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vol = v
	for _, p := range a.playing {
		p.SetVolume(v)
	}
}

func (a *hostAudio) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	var errs []error
	for _, p := range a.playing {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("host audio: %w", err))
		}
	}
	a.playing = nil
	return errors.Join(errs...)
}
