// Command povsim runs the conductor offline on a manual clock and writes the
// final frame as a PNG, one pixel per column and ring.
package main

import (
	"flag"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-povwheel/internal/app"
	"github.com/coreman2200/funtimes-povwheel/internal/config"
	"github.com/coreman2200/funtimes-povwheel/internal/led"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional config.yaml")
		demoName   = flag.String("demo", "", "demo to run (ignored when the config has a playlist)")
		ticks      = flag.Int("ticks", 1000, "ticks to simulate")
		stepUs     = flag.Uint("step-us", 1000, "clock advance per tick in µs")
		seed       = flag.Int64("seed", 1, "random seed for demos")
		out        = flag.String("out", "", "write the last frame to this PNG")
		verbose    = flag.Bool("v", false, "log every frame")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}
	if *demoName != "" {
		cfg.Demo.Name = *demoName
	}

	clk := timing.NewManualClock(0)
	sim := led.NewSim(cfg.Geometry.Columns, cfg.Geometry.Rings, log.Logger)
	c, err := app.Build(cfg, sim, clk, *seed, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		c.Step()
		clk.Advance(uint32(*stepUs))
	}
	log.Info().
		Int("ticks", *ticks).
		Dur("sim_time", time.Duration(*ticks)*time.Duration(*stepUs)*time.Microsecond).
		Dur("wall", time.Since(start)).
		Int("frames", sim.Count).
		Float64("load_ma", c.Stats.LoadMA).
		Float32("scale", c.Stats.Scale).
		Stringer("avg", led.Average(sim.Last.Pix)).
		Msg("simulation done")

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("create png")
	}
	if err := png.Encode(f, sim.Last); err != nil {
		_ = f.Close()
		log.Fatal().Err(err).Msg("encode png")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("close png")
	}
	log.Info().Str("path", *out).Msg("frame written")
}
