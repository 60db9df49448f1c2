// Package config loads the TOML settings file.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid marks a configuration that parsed but failed validation.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window    Window    `toml:"window"`
	Player    Player    `toml:"player"`
	Coroutine Coroutine `toml:"coroutine"`
	Audio     Audio     `toml:"audio"`
	Log       Log       `toml:"log"`
}

type Window struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	TPS    int     `toml:"tps"`
	Scale  float64 `toml:"scale"`
	Title  string  `toml:"title"`
}

type Player struct {
	// Plugs lists the scenes to play, in order.
	Plugs []string `toml:"plugs"`
	// Start names the first plug; empty means the first in Plugs.
	Start string `toml:"start"`
	// Loop restarts a finished plug instead of advancing.
	Loop bool `toml:"loop"`
	HUD  bool `toml:"hud"`
}

type Coroutine struct {
	StackPages int  `toml:"stack_pages"`
	Guard      bool `toml:"guard"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	// Kick and Write replace the synthesized effects with WAV files.
	Kick  string `toml:"kick"`
	Write string `toml:"write"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			TPS:    60,
			Scale:  1,
			Title:  "panim",
		},
		Player: Player{
			Plugs: []string{"squares", "kick", "kickreplay", "turing"},
			HUD:   true,
		},
		Coroutine: Coroutine{
			StackPages: 16,
			Guard:      true,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.8,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over Default. An empty path returns the defaults.
// Keys the file sets that Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := unknownKeys(md); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from a string over Default, with the same checks as Load.
func Decode(doc string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := unknownKeys(md); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func unknownKeys(md toml.MetaData) error {
	undec := md.Undecoded()
	if len(undec) == 0 {
		return nil
	}
	keys := make([]string, len(undec))
	for i, k := range undec {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0 && c.Window.TPS <= 1000, "window.tps %d out of range (1..1000)", c.Window.TPS)
	check(c.Window.Scale > 0, "window.scale %v must be positive", c.Window.Scale)
	check(len(c.Player.Plugs) > 0, "player.plugs is empty")
	if c.Player.Start != "" {
		found := false
		for _, p := range c.Player.Plugs {
			found = found || p == c.Player.Start
		}
		check(found, "player.start %q not in player.plugs", c.Player.Start)
	}
	check(c.Coroutine.StackPages > 0 && c.Coroutine.StackPages <= 4096, "coroutine.stack_pages %d out of range (1..4096)", c.Coroutine.StackPages)
	check(c.Audio.SampleRate >= 8000 && c.Audio.SampleRate <= 192000, "audio.sample_rate %d out of range", c.Audio.SampleRate)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v out of range (0..1)", c.Audio.Volume)
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		check(false, "log.format %q (want text or json)", c.Log.Format)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
