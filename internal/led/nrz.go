package led

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// NRZFreq is the SPI clock for the 800 kHz NRZ bit stream, three SPI bits per
// LED bit plus margin.
const NRZFreq = (800*3 + 100) * physic.KiloHertz

// NRZDriver drives a WS2812-class chain over SPI. The chain is laid out in
// frame order, column by column. Channels are truncated to 8 bits.
//
// order permutes channels before nrzled applies its own GRB wire order, so
// leave it RGB for stock WS2812 parts.
type NRZDriver struct {
	port    spi.PortCloser
	dev     *nrzled.Dev
	order   pixel.Order
	columns int
	rings   int
	buf     []byte
}

func NewNRZ(port spi.Port, columns, rings int, order pixel.Order) (*NRZDriver, error) {
	opts := nrzled.Opts{
		NumPixels: columns * rings,
		Channels:  3,
		Freq:      NRZFreq,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	pc, _ := port.(spi.PortCloser)
	return &NRZDriver{
		port:    pc,
		dev:     dev,
		order:   order,
		columns: columns,
		rings:   rings,
		buf:     make([]byte, 3*columns*rings),
	}, nil
}

func (d *NRZDriver) Write(f *frame.Frame) error {
	if err := checkSize(f, d.columns, d.rings); err != nil {
		return err
	}
	for i, c := range f.Pix {
		d.order.Put8(d.buf[i*3:], c)
	}
	if _, err := d.dev.Write(d.buf); err != nil {
		return fmt.Errorf("nrzled write: %w", err)
	}
	return nil
}

// Close blanks the chain and releases the port when the driver owns one.
func (d *NRZDriver) Close() error {
	err := d.dev.Halt()
	if d.port != nil {
		err = errors.Join(err, d.port.Close())
		d.port = nil
	}
	return err
}
