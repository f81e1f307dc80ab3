// Package led pushes finished frames to an output: real LEDs over SPI, a
// terminal preview, or a log-only simulator.
package led

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes a whole frame. Drivers are sized at open time; a frame of
	// another size is an error.
	Write(f *frame.Frame) error
	// Close releases resources.
	Close() error
}

// Input is one poll of the note keys.
type Input struct {
	Keys uint16 // bit i set while key i is down
	Diff uint16 // bits that changed since the previous poll
	Quit bool
}

// InputSource is implemented by drivers that can also read keys.
type InputSource interface {
	Poll() Input
}

const (
	Sim      = "sim"
	Terminal = "terminal"
	NRZ      = "nrz"
	GS16     = "gs16"
)

type Config struct {
	Name    string
	Order   pixel.Order
	Columns int
	Rings   int
	SPIDev  string // "" picks the first port
	SpeedHz int64

	// Screen overrides the terminal driver's screen; nil opens the real one.
	Screen tcell.Screen
}

// Open builds the named driver. Hardware that cannot be opened falls back to
// the simulator with a warning, so a bench machine still runs.
func Open(cfg Config, log zerolog.Logger) (Driver, error) {
	if cfg.Columns <= 0 || cfg.Rings <= 0 {
		return nil, fmt.Errorf("led: bad geometry %dx%d", cfg.Columns, cfg.Rings)
	}
	switch cfg.Name {
	case Sim, "":
		return NewSim(cfg.Columns, cfg.Rings, log), nil

	case Terminal:
		d, err := NewTerminal(cfg.Screen, cfg.Columns, cfg.Rings)
		if err != nil {
			log.Warn().Err(err).Str("driver", cfg.Name).Msg("terminal init failed; falling back to SIM")
			return NewSim(cfg.Columns, cfg.Rings, log), nil
		}
		return d, nil

	case NRZ, GS16:
		d, err := openSPI(cfg)
		if err != nil {
			log.Warn().Err(err).
				Str("driver", cfg.Name).
				Str("dev", cfg.SPIDev).
				Int64("speed_hz", cfg.SpeedHz).
				Msg("SPI init failed; falling back to SIM")
			return NewSim(cfg.Columns, cfg.Rings, log), nil
		}
		return d, nil
	}
	return nil, fmt.Errorf("led: unknown driver %q", cfg.Name)
}

func openSPI(cfg Config) (Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	port, err := spireg.Open(cfg.SPIDev)
	if err != nil {
		return nil, fmt.Errorf("open spi: %w", err)
	}
	var d Driver
	if cfg.Name == NRZ {
		d, err = NewNRZ(port, cfg.Columns, cfg.Rings, cfg.Order)
	} else {
		d, err = NewGS(port, cfg.Columns, cfg.Rings, cfg.Order, physic.Frequency(cfg.SpeedHz)*physic.Hertz)
	}
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return d, nil
}

func checkSize(f *frame.Frame, columns, rings int) error {
	if f.Columns != columns || f.Rings != rings || len(f.Pix) != columns*rings {
		return fmt.Errorf("%w: got %dx%d, driver is %dx%d", frame.ErrSize, f.Columns, f.Rings, columns, rings)
	}
	return nil
}
