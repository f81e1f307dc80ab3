package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-povwheel/internal/app"
	"github.com/coreman2200/funtimes-povwheel/internal/config"
	"github.com/coreman2200/funtimes-povwheel/internal/led"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

type openFunc func(led.Config, zerolog.Logger) (led.Driver, error)

func main() {
	// ---- Logging (stderr, the terminal driver owns the tty) ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], led.Open, log.Logger)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("povwheel failed")
	}
}

// run owns the driver for its whole lifetime, so every return path closes it
// and a terminal is always restored before main exits.
func run(ctx context.Context, args []string, open openFunc, lg zerolog.Logger) error {
	// ---- Flags (override config.yaml when set) ----
	fs := flag.NewFlagSet("povwheel", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "config.yaml", "path to config.yaml")
		driver     = fs.String("driver", "", "driver: sim | terminal | nrz | gs16")
		columns    = fs.Int("columns", 0, "columns per rotation")
		rings      = fs.Int("rings", 0, "rings, hub to rim")
		brightness = fs.Float64("brightness", 0, "brightness applied to named colors")
		tickHz     = fs.Int("tick-hz", 0, "conductor ticks per second")
		demoName   = fs.String("demo", "", "demo to run when no playlist is configured")
		seed       = fs.Int64("seed", time.Now().UnixNano(), "random seed for demos")
		simOnly    = fs.Bool("sim-only", false, "force simulation (no hardware output)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
		cfg = config.Default()
	}

	if *driver != "" {
		cfg.Driver = *driver
	}
	if *columns > 0 {
		cfg.Geometry.Columns = *columns
	}
	if *rings > 0 {
		cfg.Geometry.Rings = *rings
	}
	if *brightness > 0 {
		cfg.Brightness = float32(*brightness)
	}
	if *tickHz > 0 {
		cfg.TickHz = *tickHz
	}
	if *demoName != "" {
		cfg.Demo.Name = *demoName
	}
	if *simOnly {
		cfg.Driver = led.Sim
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	drv, err := open(led.Config{
		Name:    cfg.Driver,
		Order:   cfg.ColorOrder,
		Columns: cfg.Geometry.Columns,
		Rings:   cfg.Geometry.Rings,
		SPIDev:  cfg.SPI.Dev,
		SpeedHz: cfg.SPI.SpeedHz,
	}, lg)
	if err != nil {
		return fmt.Errorf("driver open: %w", err)
	}
	defer func() {
		if err := drv.Close(); err != nil {
			lg.Warn().Err(err).Msg("driver close failed")
		}
	}()

	c, err := app.Build(cfg, drv, timing.NewSystemClock(), *seed, lg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	lg.Info().
		Str("driver", cfg.Driver).
		Int("columns", cfg.Geometry.Columns).
		Int("rings", cfg.Geometry.Rings).
		Msg("wheel starting")
	if err := c.Run(ctx, cfg.TickHz); err != nil {
		return err
	}
	lg.Info().
		Uint64("ticks", c.Stats.Ticks).
		Uint64("writes", c.Stats.Writes).
		Uint64("write_errors", c.Stats.WriteErrors).
		Msg("shutting down")
	return nil
}
