//go:build !cgo

package hal

import "fmt"

func newHostAudio(int, float64) (Audio, error) {
	return nil, fmt.Errorf("host audio: %w without cgo", ErrNotImplemented)
}
