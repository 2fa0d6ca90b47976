package car

import "github.com/golangdaddy/kart/road"

// DefaultGlyph is the character drawn for the player's car
const DefaultGlyph = '^'

// Car is the player's vehicle on the bottom row of the field
type Car struct {
	X     int  // Current column
	Glyph rune // Character drawn at X

	minX int // Leftmost column the car may occupy
	maxX int // Rightmost column the car may occupy
	row  int // Row the car drives on
	home int // Column the car starts a race in
}

// NewCar creates a car centred on the bottom row of g
func NewCar(g road.Geometry, glyph rune) *Car {
	c := &Car{
		Glyph: glyph,
		minX:  1,
		maxX:  g.Width - 2,
		row:   g.CarRow(),
		home:  g.Width / 2,
	}
	c.Reset()
	return c
}

// Reset puts the car back on its starting column
func (c *Car) Reset() {
	c.X = c.home
}

// Row returns the row the car drives on
func (c *Car) Row() int {
	return c.row
}

// MoveLeft shifts the car one column left; it reports false at the left edge
func (c *Car) MoveLeft() bool {
	if c.X <= c.minX {
		return false
	}
	c.X--
	return true
}

// MoveRight shifts the car one column right; it reports false at the right edge
func (c *Car) MoveRight() bool {
	if c.X >= c.maxX {
		return false
	}
	c.X++
	return true
}
