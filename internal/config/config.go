package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-povwheel/internal/demo"
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/playlist"
	"github.com/coreman2200/funtimes-povwheel/internal/power"
)

type Geometry struct {
	Rings   int `yaml:"rings"`   // concentric circles, hub to rim
	Columns int `yaml:"columns"` // spokes per rotation
}

type Demo struct {
	Name             string  `yaml:"name"`
	FlashDelayUs     uint32  `yaml:"flash_delay_us"`
	RainbowStepTicks uint32  `yaml:"rainbow_step_ticks"`
	RingFrameUs      uint32  `yaml:"ring_frame_us"`
	RingHz           float32 `yaml:"ring_hz"`
	Palette          string  `yaml:"palette"` // built-in name or hueN
	Blur             float32 `yaml:"blur"`
}

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty for the first port
	SpeedHz int64  `yaml:"speed_hz"` // e.g. 8000000
}

type Config struct {
	Driver     string           `yaml:"driver"` // "sim" | "terminal" | "nrz" | "gs16"
	ColorOrder pixel.Order      `yaml:"color_order"`
	Brightness float32          `yaml:"brightness"`
	TickHz     int              `yaml:"tick_hz"`
	LogLevel   string           `yaml:"log_level"`
	Geometry   Geometry         `yaml:"geometry"`
	Edge       frame.EdgePolicy `yaml:"edge"`
	Demo       Demo             `yaml:"demo"`
	Power      power.Limiter    `yaml:"power"`
	SPI        SPI              `yaml:"spi,omitempty"`
	Playlist   playlist.Program `yaml:"playlist,omitempty"`
}

// Default is a small wheel on the simulator running the rainbow.
func Default() *Config {
	return &Config{
		Driver:     "sim",
		ColorOrder: pixel.OrderRGB,
		Brightness: 64,
		TickHz:     1000,
		LogLevel:   "info",
		Geometry:   Geometry{Rings: 16, Columns: 128},
		Edge:       frame.EdgeCopy,
		Demo: Demo{
			Name:             "rainbow",
			FlashDelayUs:     500_000,
			RainbowStepTicks: 20,
			RingFrameUs:      10_000,
			RingHz:           0.5,
			Palette:          "rainbow12",
			Blur:             0.5,
		},
		Power: power.Default(),
		SPI:   SPI{SpeedHz: 8_000_000},
	}
}

// Load reads path over the defaults, so a partial file only overrides what it
// names.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate reports every problem it finds, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Geometry.Rings <= 0 || c.Geometry.Columns <= 0 {
		errs = append(errs, fmt.Errorf("geometry %dx%d must be positive", c.Geometry.Columns, c.Geometry.Rings))
	}
	if c.Brightness <= 0 {
		errs = append(errs, fmt.Errorf("brightness %v must be positive", c.Brightness))
	}
	if c.TickHz <= 0 || c.TickHz > 100_000 {
		errs = append(errs, fmt.Errorf("tick_hz %d out of range (1..100000)", c.TickHz))
	}
	if c.Edge < frame.EdgeWrap || c.Edge > frame.EdgeBlack {
		errs = append(errs, fmt.Errorf("edge %s is not a policy", c.Edge))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	reg := demo.Default()
	if !reg.Has(c.Demo.Name) {
		errs = append(errs, fmt.Errorf("unknown demo %q (have %v)", c.Demo.Name, reg.List()))
	}
	if _, ok := palette.ByName(c.Demo.Palette); !ok {
		errs = append(errs, fmt.Errorf("unknown palette %q", c.Demo.Palette))
	}
	if c.Demo.Blur < 0 || c.Demo.Blur > 1 {
		errs = append(errs, fmt.Errorf("demo.blur %v out of range (0..1)", c.Demo.Blur))
	}
	if len(c.Playlist.Clips) > 0 {
		if err := playlist.Validate(c.Playlist); err != nil {
			errs = append(errs, err)
		}
		for _, clip := range c.Playlist.Clips {
			if clip.Demo != "" && !reg.Has(clip.Demo) {
				errs = append(errs, fmt.Errorf("playlist: unknown demo %q", clip.Demo))
			}
		}
	}
	return errors.Join(errs...)
}

// Level is the parsed log level, info when unset or invalid.
func (c *Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return l
}

// PaletteOrDefault resolves Demo.Palette, falling back to Rainbow12.
func (c *Config) PaletteOrDefault() palette.Palette {
	if p, ok := palette.ByName(c.Demo.Palette); ok {
		return p
	}
	return palette.Rainbow12
}
