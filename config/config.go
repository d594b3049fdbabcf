package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/bouncers/core"
	"github.com/lixenwraith/bouncers/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk TOML configuration
type Config struct {
	Viewport   Viewport   `toml:"viewport"`
	Simulation Simulation `toml:"simulation"`
	Audio      Audio      `toml:"audio"`
	Log        Log        `toml:"log"`
	Display    Display    `toml:"display"`
}

// Viewport half extents in world units; bounds are [-half, half] on each axis
type Viewport struct {
	HalfWidth  int `toml:"half_width"`
	HalfHeight int `toml:"half_height"`
}

type Simulation struct {
	Seed      uint64 `toml:"seed"`
	FrameRate int    `toml:"frame_rate"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

type Display struct {
	Monochrome bool `toml:"monochrome"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Viewport: Viewport{
			HalfWidth:  parameter.DisplayWidth / 2,
			HalfHeight: parameter.DisplayHeight / 2,
		},
		Simulation: Simulation{
			Seed:      parameter.DefaultSeed,
			FrameRate: parameter.DefaultFrameRate,
		},
		Audio: Audio{Enabled: true},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML to path
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return encodeTo(f, cfg)
}

// encodeTo encodes cfg into w and closes it; a close failure is reported when encoding succeeded
func encodeTo(w io.WriteCloser, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		w.Close()
		return fmt.Errorf("save config: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Viewport.HalfWidth <= 0 || c.Viewport.HalfHeight <= 0 {
		return fmt.Errorf("viewport %dx%d must be positive: %w", c.Viewport.HalfWidth, c.Viewport.HalfHeight, ErrInvalid)
	}
	if c.Simulation.FrameRate < 1 || c.Simulation.FrameRate > parameter.MaxFrameRate {
		return fmt.Errorf("frame_rate %d outside 1..%d: %w", c.Simulation.FrameRate, parameter.MaxFrameRate, ErrInvalid)
	}
	return nil
}

// Bounds returns the viewport as world bounds
func (c Config) Bounds() core.Bounds {
	return core.BoundsFromHalfExtents(c.Viewport.HalfWidth, c.Viewport.HalfHeight)
}

// FrameInterval returns the time between frames
func (c Config) FrameInterval() time.Duration {
	if c.Simulation.FrameRate <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Simulation.FrameRate)
}
