//go:build cgo

package app

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// decodeWAV decodes a PCM WAV clip into interleaved 16-bit little-endian
// stereo at sampleRate, the layout hal.Audio plays.
func decodeWAV(r io.Reader, sampleRate int) ([]byte, error) {
	s, err := wav.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return pcm, nil
}
