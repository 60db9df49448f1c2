package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Fast runs frames back to back instead of pacing them to Hz.
	// Deltas stay 1/Hz either way.
	Fast bool
}

// RunHeadless drives the app without opening a window. Every frame advances
// by exactly 1/Hz seconds.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, hc Config, newApp func(HAL) StepFunc) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(hc)
	defer h.close()
	step := newApp(h)
	dt := 1 / float64(cfg.Hz)

	var tick <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.step(dt)
		if step != nil {
			if err := step(dt); err != nil {
				return err
			}
		}
		n++
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}
