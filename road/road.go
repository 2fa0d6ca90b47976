package road

import (
	"math/rand/v2"
)

const (
	// SeedOffset is the boundary of the first row before any walk has run
	SeedOffset = 7
	// MinSpace is the smallest boundary offset the walk produces
	MinSpace = 2
	// MaxDrift bounds how far the boundary moves between neighbouring rows
	MaxDrift = 2
)

// Geometry describes the playing field in character cells
type Geometry struct {
	Width      int // Window width; columns 1..Width-1 hold track
	Height     int // Window height; rows 1..Height-1 hold track, the car drives on Height-1
	TrackWidth int // Open cells to the right of each boundary
	MaxSpace   int // Largest boundary offset the walk may produce
}

// DefaultGeometry returns the classic 25x10 field with a 10 cell track
func DefaultGeometry() Geometry {
	return Geometry{
		Width:      25,
		Height:     10,
		TrackWidth: 10,
		MaxSpace:   7,
	}
}

// Rows returns how many boundary offsets the track window holds
func (g Geometry) Rows() int {
	return g.Height - 1
}

// CarRow returns the row the car drives on
func (g Geometry) CarRow() int {
	return g.Height - 1
}

// Track is the rolling window of left boundary offsets scrolling toward the car.
// Index 0 is the newest row at the top; the last index is the row under the car.
// An offset of 0 means the boundary for that row is not established yet.
type Track struct {
	geometry Geometry
	offsets  []int
	rng      *rand.Rand
}

// NewTrack creates a track window seeded with SeedOffset on the top row
func NewTrack(geometry Geometry, rng *rand.Rand) *Track {
	t := &Track{
		geometry: geometry,
		offsets:  make([]int, geometry.Rows()),
		rng:      rng,
	}
	t.Reset()
	return t
}

// Reset restores the window to its initial state
func (t *Track) Reset() {
	for i := range t.offsets {
		t.offsets[i] = 0
	}
	if len(t.offsets) > 0 {
		t.offsets[0] = min(SeedOffset, t.geometry.MaxSpace)
	}
}

// Advance scrolls every row one step toward the car and generates a new top row
// within MaxDrift of the previous top row, clamped to [MinSpace, MaxSpace].
func (t *Track) Advance() {
	n := len(t.offsets)
	if n < 2 {
		return
	}
	for i := n - 1; i > 0; i-- {
		t.offsets[i] = t.offsets[i-1]
	}

	prev := t.offsets[1]
	lo := max(prev-MaxDrift, MinSpace)
	hi := min(prev+MaxDrift, t.geometry.MaxSpace)
	if hi < lo {
		hi = lo
	}
	t.offsets[0] = lo + t.rng.IntN(hi-lo+1)
}

// Geometry returns the field dimensions the track was built for
func (t *Track) Geometry() Geometry {
	return t.geometry
}

// Len returns the number of rows in the window
func (t *Track) Len() int {
	return len(t.offsets)
}

// Offset returns the boundary of the given row index
func (t *Track) Offset(i int) int {
	return t.offsets[i]
}

// Bottom returns the boundary of the row the car occupies
func (t *Track) Bottom() int {
	if len(t.offsets) == 0 {
		return 0
	}
	return t.offsets[len(t.offsets)-1]
}

// Offsets returns a copy of the window
func (t *Track) Offsets() []int {
	out := make([]int, len(t.offsets))
	copy(out, t.offsets)
	return out
}
