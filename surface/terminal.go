package surface

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Terminal is a Surface drawn on a tcell screen
type Terminal struct {
	screen  tcell.Screen
	fg      Color
	bg      Color
	cursorX int
	cursorY int
}

// NewTerminal wraps an initialised tcell screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		fg:     ColorDefault,
		bg:     ColorDefault,
	}
}

// tcellColor maps a surface colour onto the tcell palette
func tcellColor(c Color) tcell.Color {
	switch c {
	case ColorBlack:
		return tcell.ColorBlack
	case ColorRed:
		return tcell.ColorRed
	case ColorWhite:
		return tcell.ColorWhite
	case ColorYellow:
		return tcell.ColorYellow
	default:
		return tcell.ColorReset
	}
}

func (t *Terminal) style() tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(t.fg)).Background(tcellColor(t.bg))
}

// Clear fills the screen with the current background
func (t *Terminal) Clear() {
	t.screen.Fill(' ', t.style())
	t.cursorX, t.cursorY = 0, 0
}

// HideCursor hides the terminal cursor
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// DrawRect draws a +-| box with corners at (x0, y0) and (x1, y1)
func (t *Terminal) DrawRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	st := t.style()
	for x := x0 + 1; x < x1; x++ {
		t.screen.SetContent(x, y0, '-', nil, st)
		t.screen.SetContent(x, y1, '-', nil, st)
	}
	for y := y0 + 1; y < y1; y++ {
		t.screen.SetContent(x0, y, '|', nil, st)
		t.screen.SetContent(x1, y, '|', nil, st)
	}
	t.screen.SetContent(x0, y0, '+', nil, st)
	t.screen.SetContent(x1, y0, '+', nil, st)
	t.screen.SetContent(x0, y1, '+', nil, st)
	t.screen.SetContent(x1, y1, '+', nil, st)
}

// SetContent puts ch at (x, y)
func (t *Terminal) SetContent(x, y int, ch rune) {
	t.screen.SetContent(x, y, ch, nil, t.style())
}

// SetForeground sets the foreground for later glyphs
func (t *Terminal) SetForeground(c Color) {
	t.fg = c
}

// SetBackground sets the background for later glyphs
func (t *Terminal) SetBackground(c Color) {
	t.bg = c
}

// Printf writes formatted text at the cursor
func (t *Terminal) Printf(format string, args ...any) {
	st := t.style()
	for _, ch := range fmt.Sprintf(format, args...) {
		switch ch {
		case '\r':
			t.cursorX = 0
		case '\n':
			t.cursorY++
		default:
			t.screen.SetContent(t.cursorX, t.cursorY, ch, nil, st)
			t.cursorX++
		}
	}
}

// Show flushes pending cells to the terminal
func (t *Terminal) Show() {
	t.screen.Show()
}

// RunTerminal pumps key presses from screen into onKey as single bytes
// until Esc or Ctrl-C is pressed. Once done is closed, the next key press
// also returns so the player can read the final screen first.
// Arrow keys are delivered as '<' and '>'.
func RunTerminal(screen tcell.Screen, onKey func(byte), done <-chan struct{}) {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	finished := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
					return
				}
				if finished {
					return
				}
				if b, ok := keyByte(e); ok && onKey != nil {
					onKey(b)
				}
			}
		case <-done:
			finished = true
			done = nil
		}
	}
}

// keyByte reduces a tcell key event to the single character the race expects
func keyByte(e *tcell.EventKey) (byte, bool) {
	switch e.Key() {
	case tcell.KeyLeft:
		return '<', true
	case tcell.KeyRight:
		return '>', true
	case tcell.KeyRune:
		r := e.Rune()
		if r < utf8.RuneSelf {
			return byte(r), true
		}
	}
	return 0, false
}
