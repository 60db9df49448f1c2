//go:build !cgo

package app

import (
	"fmt"
	"io"

	"panim/hal"
)

func decodeWAV(io.Reader, int) ([]byte, error) {
	return nil, fmt.Errorf("decode wav: %w without cgo", hal.ErrNotImplemented)
}
