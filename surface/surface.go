package surface

// Color is a terminal colour understood by every surface
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorWhite
	ColorYellow
)

// String returns the colour name
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	default:
		return "default"
	}
}

// Surface is the character-cell drawing target the race paints on.
// Coordinates are in cells with (0, 0) at the top-left corner.
// Implementations silently ignore cells outside their bounds.
type Surface interface {
	// Clear fills the whole surface with blanks in the current background
	// and moves the text cursor home
	Clear()
	// HideCursor hides the terminal cursor, where there is one
	HideCursor()
	// DrawRect draws a box whose corners are (x0, y0) and (x1, y1)
	DrawRect(x0, y0, x1, y1 int)
	// SetContent puts a single glyph at (x, y) using the current colours
	SetContent(x, y int, ch rune)
	// SetForeground changes the colour used by later glyphs
	SetForeground(c Color)
	// SetBackground changes the background used by later glyphs
	SetBackground(c Color)
	// Printf writes text at the cursor; '\r' returns to column 0, '\n' moves down a row
	Printf(format string, args ...any)
	// Show flushes the pending frame to the host
	Show()
}
