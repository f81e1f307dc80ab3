package app

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-povwheel/internal/config"
	"github.com/coreman2200/funtimes-povwheel/internal/demo"
	"github.com/coreman2200/funtimes-povwheel/internal/led"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

// DemoOptions turns the demo section of a config into demo.Options.
func DemoOptions(cfg *config.Config, clk timing.Clock, seed int64) demo.Options {
	return demo.Options{
		Clock:            clk,
		Brightness:       cfg.Brightness,
		Palette:          cfg.PaletteOrDefault(),
		Edge:             cfg.Edge,
		Rand:             rand.New(rand.NewSource(seed)),
		FlashDelayUs:     cfg.Demo.FlashDelayUs,
		RainbowStepTicks: cfg.Demo.RainbowStepTicks,
		RingFrameUs:      cfg.Demo.RingFrameUs,
		RingHz:           cfg.Demo.RingHz,
		Blur:             cfg.Demo.Blur,
	}
}

// Build wires a conductor from config: demo options, power limits, and the
// playlist if one is configured, otherwise the single configured demo.
func Build(cfg *config.Config, drv led.Driver, clk timing.Clock, seed int64, log zerolog.Logger) (*Conductor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewConductor(drv, demo.Default(), DemoOptions(cfg, clk, seed),
		cfg.Geometry.Columns, cfg.Geometry.Rings, log)
	c.Limiter = cfg.Power

	if len(cfg.Playlist.Clips) > 0 {
		if err := c.Seq.Load(cfg.Playlist); err != nil {
			return nil, fmt.Errorf("playlist: %w", err)
		}
		c.Seq.Start()
		log.Info().Int("clips", len(cfg.Playlist.Clips)).Bool("loop", cfg.Playlist.Loop).Msg("playlist started")
		return c, nil
	}
	if err := c.SetDemo(cfg.Demo.Name); err != nil {
		return nil, err
	}
	return c, nil
}
