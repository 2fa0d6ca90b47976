package road

import "github.com/golangdaddy/kart/surface"

// IsWall reports whether column x of a row with the given boundary is wall.
// A zero boundary leaves everything right of it open.
func IsWall(x, offset, trackWidth int) bool {
	if x <= offset {
		return true
	}
	if offset <= 0 {
		return false
	}
	return x > offset+trackWidth
}

// Draw paints every track row onto s using wall for blocked cells
func Draw(s surface.Surface, t *Track, wall rune) {
	g := t.geometry
	for y := 1; y < g.Height; y++ {
		offset := t.offsets[y-1]
		for x := 1; x < g.Width; x++ {
			if IsWall(x, offset, g.TrackWidth) {
				s.SetContent(x, y, wall)
			} else {
				s.SetContent(x, y, ' ')
			}
		}
	}
}

// DrawBorder draws the box around the field
func DrawBorder(s surface.Surface, g Geometry) {
	s.DrawRect(0, 0, g.Width, g.Height)
}

// DrawSpeed shows the speed tier digit just outside the right border
func DrawSpeed(s surface.Surface, g Geometry, tier int) {
	s.SetContent(g.Width+1, 1, rune('0'+tier%10))
}
