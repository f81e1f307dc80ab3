package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/led"
)

// quitDriver asks to quit after a few polls and records Close.
type quitDriver struct {
	polls  int
	writes int
	closed int
}

func (d *quitDriver) Write(*frame.Frame) error { d.writes++; return nil }
func (d *quitDriver) Close() error             { d.closed++; return nil }
func (d *quitDriver) Poll() led.Input {
	d.polls++
	return led.Input{Quit: d.polls > 3}
}

func opener(d *quitDriver, opened *led.Config) openFunc {
	return func(cfg led.Config, _ zerolog.Logger) (led.Driver, error) {
		*opened = cfg
		return d, nil
	}
}

func TestRunClosesDriverOnQuit(t *testing.T) {
	d := &quitDriver{}
	var opened led.Config
	missing := filepath.Join(t.TempDir(), "none.yaml")

	err := run(context.Background(), []string{
		"-config", missing, "-driver", "terminal", "-columns", "8", "-rings", "2", "-tick-hz", "1000",
	}, opener(d, &opened), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "terminal", opened.Name)
	assert.Equal(t, 8, opened.Columns)
	assert.Equal(t, 3, d.writes)
	assert.Equal(t, 1, d.closed)
}

func TestRunRejectsBadConfigBeforeOpening(t *testing.T) {
	d := &quitDriver{}
	var opened led.Config
	missing := filepath.Join(t.TempDir(), "none.yaml")

	err := run(context.Background(), []string{
		"-config", missing, "-driver", "terminal", "-demo", "bogus",
	}, opener(d, &opened), zerolog.Nop())
	require.Error(t, err)
	assert.Empty(t, opened.Name, "driver never opened")
	assert.Equal(t, 0, d.closed)
}

func TestRunClosesDriverOnCancel(t *testing.T) {
	d := &quitDriver{polls: -1 << 30}
	var opened led.Config
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, []string{"-config", filepath.Join(t.TempDir(), "none.yaml"), "-sim-only"},
		opener(d, &opened), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, led.Sim, opened.Name)
	assert.Equal(t, 1, d.closed)
}
