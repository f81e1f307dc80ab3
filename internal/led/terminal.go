package led

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
)

// noteKeys maps the number row onto the twelve note bits.
const noteKeys = "1234567890-="

// TerminalDriver previews the unwrapped wheel in a terminal, one cell per
// pixel with columns across and the hub on the top row. It also reads the
// keyboard: the number row plays notes, Esc, q or Ctrl-C quits.
type TerminalDriver struct {
	screen  tcell.Screen
	columns int
	rings   int
	prev    uint16
}

// NewTerminal initialises screen, or the real terminal when screen is nil.
func NewTerminal(screen tcell.Screen, columns, rings int) (*TerminalDriver, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	return &TerminalDriver{screen: screen, columns: columns, rings: rings}, nil
}

func (d *TerminalDriver) Write(f *frame.Frame) error {
	if err := checkSize(f, d.columns, d.rings); err != nil {
		return err
	}
	w, h := d.screen.Size()
	for col := 0; col < f.Columns && col < w; col++ {
		for ring := 0; ring < f.Rings && ring < h; ring++ {
			r, g, b := f.Pixel(col, ring).RGB8()
			st := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			d.screen.SetContent(col, ring, ' ', nil, st)
		}
	}
	d.screen.Show()
	return nil
}

// Poll drains pending key events without blocking. A terminal only reports
// presses, so each key is down for exactly one poll.
func (d *TerminalDriver) Poll() Input {
	var in Input
	for d.screen.HasPendingEvent() {
		ev, ok := d.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				in.Quit = true
			} else if i := strings.IndexRune(noteKeys, ev.Rune()); i >= 0 {
				in.Keys |= 1 << i
			}
		}
	}
	in.Diff = in.Keys ^ d.prev
	d.prev = in.Keys
	return in
}

func (d *TerminalDriver) Close() error {
	d.screen.Fini()
	return nil
}
