package surface

import (
	"fmt"
	"strings"
	"sync"
)

// Cell is one character position of a Grid
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Grid is an in-memory Surface. Hosts without a native character screen
// render from it, and it doubles as a recording surface.
type Grid struct {
	mu sync.Mutex

	width  int
	height int
	cells  []Cell

	fg      Color // Foreground for the next glyph
	bg      Color // Background for the next glyph
	cursorX int   // Printf column
	cursorY int   // Printf row

	cursorHidden bool
	frames       int // Number of Show calls
}

// NewGrid creates a blank grid of the given size
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		fg:     ColorDefault,
		bg:     ColorDefault,
	}
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
	return g
}

// Size returns the grid dimensions in cells
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Clear blanks every cell with the current colours
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Fg: g.fg, Bg: g.bg}
	}
	g.cursorX, g.cursorY = 0, 0
}

// HideCursor records that the cursor was hidden
func (g *Grid) HideCursor() {
	g.mu.Lock()
	g.cursorHidden = true
	g.mu.Unlock()
}

// CursorHidden reports whether HideCursor has been called
func (g *Grid) CursorHidden() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursorHidden
}

// DrawRect draws a +-| box with corners at (x0, y0) and (x1, y1)
func (g *Grid) DrawRect(x0, y0, x1, y1 int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0 + 1; x < x1; x++ {
		g.set(x, y0, '-')
		g.set(x, y1, '-')
	}
	for y := y0 + 1; y < y1; y++ {
		g.set(x0, y, '|')
		g.set(x1, y, '|')
	}
	g.set(x0, y0, '+')
	g.set(x1, y0, '+')
	g.set(x0, y1, '+')
	g.set(x1, y1, '+')
}

// SetContent puts ch at (x, y)
func (g *Grid) SetContent(x, y int, ch rune) {
	g.mu.Lock()
	g.set(x, y, ch)
	g.mu.Unlock()
}

func (g *Grid) set(x, y int, ch rune) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = Cell{Rune: ch, Fg: g.fg, Bg: g.bg}
}

// SetForeground sets the foreground for later glyphs
func (g *Grid) SetForeground(c Color) {
	g.mu.Lock()
	g.fg = c
	g.mu.Unlock()
}

// SetBackground sets the background for later glyphs
func (g *Grid) SetBackground(c Color) {
	g.mu.Lock()
	g.bg = c
	g.mu.Unlock()
}

// Background returns the background later glyphs will use
func (g *Grid) Background() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bg
}

// Printf writes formatted text at the cursor
func (g *Grid) Printf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, ch := range text {
		switch ch {
		case '\r':
			g.cursorX = 0
		case '\n':
			g.cursorY++
		default:
			g.set(g.cursorX, g.cursorY, ch)
			g.cursorX++
		}
	}
}

// Show counts a flushed frame
func (g *Grid) Show() {
	g.mu.Lock()
	g.frames++
	g.mu.Unlock()
}

// Frames returns how many times Show has been called
func (g *Grid) Frames() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frames
}

// Cell returns the cell at (x, y); out of range positions read as blank
func (g *Grid) Cell(x, y int) Cell {
	g.mu.Lock()
	defer g.mu.Unlock()

	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{Rune: ' '}
	}
	return g.cells[y*g.width+x]
}

// Row returns the glyphs of row y as a string
func (g *Grid) Row(y int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Snapshot copies every cell in row-major order
func (g *Grid) Snapshot() []Cell {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
