package car

import "github.com/golangdaddy/kart/surface"

// RenderCar draws the car glyph at its column
func RenderCar(s surface.Surface, c *Car) {
	s.SetContent(c.X, c.row, c.Glyph)
}

// EraseCar blanks the cell at column x of the car's row
func EraseCar(s surface.Surface, c *Car, x int) {
	s.SetContent(x, c.row, ' ')
}

// Steer applies move to the car and redraws it if it actually moved
func Steer(s surface.Surface, c *Car, move func() bool) bool {
	old := c.X
	if !move() {
		return false
	}
	EraseCar(s, c, old)
	RenderCar(s, c)
	return true
}
