package model

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalFrontend renders the grid into a tcell screen, two columns per cell.
// Cells that do not fit on the screen are clipped.
type TerminalFrontend struct {
	screen tcell.Screen
	events <-chan tcell.Event

	alive tcell.Style
	dead  tcell.Style
}

// NewTerminalFrontend wraps an initialized screen. events is the channel the
// screen's events are pumped into, normally via tcell.Screen.ChannelEvents.
func NewTerminalFrontend(screen tcell.Screen, events <-chan tcell.Event) *TerminalFrontend {
	return &TerminalFrontend{
		screen: screen,
		events: events,
		alive:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
	}
}

// CloseRequested drains every pending event without blocking and reports
// whether one of them asks to quit (Esc, q or Ctrl-C).
func (t *TerminalFrontend) CloseRequested() bool {
	closed := false
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					closed = true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return closed
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Present draws the grid and shows the frame
func (t *TerminalFrontend) Present(g *Grid) error {
	t.screen.Clear()

	screenWidth, screenHeight := t.screen.Size()
	rows := min(g.height, screenHeight)
	cols := min(g.width, screenWidth/2)

	for row := range rows {
		for col := range cols {
			style := t.dead
			if g.cells[row][col] {
				style = t.alive
			}
			t.screen.SetContent(col*2, row, ' ', nil, style)
			t.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	t.screen.Show()
	return nil
}
