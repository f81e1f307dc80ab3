package led

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// DefaultGSSpeed is used when no SPI speed is configured.
const DefaultGSSpeed = 8 * physic.MegaHertz

// GSDriver feeds 16-bit grayscale shift registers: six bytes per LED,
// big-endian channels in the configured order. Write shifts the whole frame;
// WriteColumn shifts a single spoke for hardware that latches per column.
// A port that can be closed is owned by the driver and closed with it.
type GSDriver struct {
	port    spi.PortCloser
	conn    spi.Conn
	order   pixel.Order
	columns int
	rings   int
	buf     []byte
}

func NewGS(port spi.Port, columns, rings int, order pixel.Order, speed physic.Frequency) (*GSDriver, error) {
	if speed <= 0 {
		speed = DefaultGSSpeed
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("spi connect: %w", err)
	}
	pc, _ := port.(spi.PortCloser)
	return &GSDriver{
		port:    pc,
		conn:    c,
		order:   order,
		columns: columns,
		rings:   rings,
		buf:     make([]byte, 6*columns*rings),
	}, nil
}

func (d *GSDriver) Write(f *frame.Frame) error {
	if err := checkSize(f, d.columns, d.rings); err != nil {
		return err
	}
	for i, c := range f.Pix {
		d.order.Put(d.buf[i*6:], c)
	}
	return d.conn.Tx(d.buf, nil)
}

// WriteColumn shifts out one column, hub first.
func (d *GSDriver) WriteColumn(f *frame.Frame, column int) error {
	if err := checkSize(f, d.columns, d.rings); err != nil {
		return err
	}
	out := d.buf[:6*d.rings]
	for ring, c := range f.Column(f.WrapColumn(column)) {
		d.order.Put(out[ring*6:], c)
	}
	return d.conn.Tx(out, nil)
}

// Close shifts out an all-dark frame, then releases the port.
func (d *GSDriver) Close() error {
	clear(d.buf)
	err := d.conn.Tx(d.buf, nil)
	if d.port != nil {
		err = errors.Join(err, d.port.Close())
		d.port = nil
	}
	return err
}
