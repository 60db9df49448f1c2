package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"panim/app"
	"panim/hal"
	"panim/internal/buildinfo"
	"panim/internal/config"
	"panim/internal/logging"
	"panim/studio/coro"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		hcfg       hal.HeadlessConfig
		configPath string
		plugName   string
		logLevel   string
		dump       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file.")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&hcfg.Fast, "fast", false, "Do not pace headless frames to wall-clock time.")
	flag.StringVar(&plugName, "plug", "", "Play only this plug.")
	flag.StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error).")
	flag.BoolVar(&dump, "dump", false, "Dump the active plug state on exit.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if plugName != "" {
		cfg.Player.Plugs = []string{plugName}
		cfg.Player.Start = ""
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Path: cfg.Log.Path})
	if err != nil {
		return err
	}
	defer log.Close()
	log.SetDefault()
	coro.SetLogger(log.With("pkg", "coro"))
	log.Info("panim starting", "build", buildinfo.Long(), "headless", hcfg.Enabled)

	hc := hal.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Scale:      cfg.Window.Scale,
		Title:      cfg.Window.Title,
		TPS:        cfg.Window.TPS,
		Audio:      cfg.Audio.Enabled && !hcfg.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	}

	var (
		a    *app.App
		host hal.HAL
	)
	newApp := func(h hal.HAL) hal.StepFunc {
		host = h
		a, err = app.New(h, app.Options{Config: cfg, Logger: log.Logger, PanicScreen: !hcfg.Enabled})
		if err != nil {
			initErr := err
			return func(float64) error { return initErr }
		}
		return a.Step
	}
	defer func() {
		if host != nil && host.Time() != nil {
			log.Info("panim stopped", "frames", host.Time().Frames(), "seconds", host.Time().Seconds())
		}
		if a == nil {
			return
		}
		if dump {
			a.Dump(os.Stdout)
		}
		if err := a.Close(); err != nil {
			log.Warn("close", "err", err)
		}
	}()

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hcfg, hc, newApp); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
	return hal.RunWindow(hc, newApp)
}
