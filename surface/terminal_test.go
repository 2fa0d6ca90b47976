package surface

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulationScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminalDrawsWithColours(t *testing.T) {
	s := newSimulationScreen(t, 10, 4)
	term := NewTerminal(s)

	term.SetBackground(ColorRed)
	term.SetContent(2, 1, '^')
	term.Show()

	mainc, _, style, _ := s.GetContent(2, 1)
	assert.Equal(t, '^', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)
}

func TestTerminalDrawRect(t *testing.T) {
	s := newSimulationScreen(t, 6, 3)
	term := NewTerminal(s)
	term.DrawRect(0, 0, 5, 2)
	term.Show()

	want := []string{"+----+", "|    |", "+----+"}
	for y, row := range want {
		for x, ch := range row {
			got, _, _, _ := s.GetContent(x, y)
			assert.Equalf(t, ch, got, "cell (%d,%d)", x, y)
		}
	}
}

func TestTerminalPrintf(t *testing.T) {
	s := newSimulationScreen(t, 20, 3)
	term := NewTerminal(s)
	term.Clear()
	term.Printf("YOU WIN!\r\n")
	term.Printf("%d s", 7)
	term.Show()

	for x, ch := range "YOU WIN!" {
		got, _, _, _ := s.GetContent(x, 0)
		assert.Equal(t, ch, got)
	}
	for x, ch := range "7 s" {
		got, _, _, _ := s.GetContent(x, 1)
		assert.Equal(t, ch, got)
	}
}

func TestKeyByte(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want byte
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), 'a', true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), '<', true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), '>', true},
		{"non ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyByte(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunTerminalDeliversKeysUntilEscape(t *testing.T) {
	s := newSimulationScreen(t, 10, 4)
	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'é', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'D', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var got []byte
	RunTerminal(s, func(b byte) { got = append(got, b) }, make(chan struct{}))

	assert.Equal(t, []byte{'a', '>', 'D'}, got)
}
