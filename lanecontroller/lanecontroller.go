package lanecontroller

import (
	"time"
)

// Tier is one step of the speed table
type Tier struct {
	Threshold uint32        // Collision-free ticks at which the tier engages
	Level     int           // Tier number shown to the player (1-based)
	Period    time.Duration // Tick period while the tier is active
}

// DefaultTiers returns the standard five step speed table
func DefaultTiers() []Tier {
	return []Tier{
		{Threshold: 0, Level: 1, Period: 1000 * time.Millisecond},
		{Threshold: 10, Level: 2, Period: 750 * time.Millisecond},
		{Threshold: 30, Level: 3, Period: 500 * time.Millisecond},
		{Threshold: 50, Level: 4, Period: 250 * time.Millisecond},
		{Threshold: 75, Level: 5, Period: 175 * time.Millisecond},
	}
}

// Result describes what one evaluation decided
type Result struct {
	Collided    bool // The car was off the track this tick
	TierChanged bool // The speed tier differs from the previous tick
	Tier        Tier // Tier in effect after this tick
}

// LaneController checks the car against the lane under it and tracks how
// long the player has stayed on the track, mapping that to a speed tier.
type LaneController struct {
	trackWidth int
	tiers      []Tier

	safeTicks uint32 // Ticks since the last collision
	current   Tier   // Tier in effect
}

// NewLaneController creates a controller for a track of the given width.
// tiers must start at threshold 0; DefaultTiers is used when it is empty.
func NewLaneController(trackWidth int, tiers []Tier) *LaneController {
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	lc := &LaneController{
		trackWidth: trackWidth,
		tiers:      append([]Tier(nil), tiers...),
	}
	lc.Reset()
	return lc
}

// Reset clears the collision-free count and drops back to the first tier
func (lc *LaneController) Reset() {
	lc.safeTicks = 0
	lc.current = lc.tiers[0]
}

// Collides reports whether column x is off a lane whose left boundary is bottom.
// A zero boundary has not been established yet and never collides.
func (lc *LaneController) Collides(x, bottom int) bool {
	if bottom == 0 {
		return false
	}
	return x <= bottom || x >= bottom+lc.trackWidth+1
}

// Evaluate runs one tick of collision and speed bookkeeping for a car at x
// above a row whose left boundary is bottom.
func (lc *LaneController) Evaluate(x, bottom int) Result {
	res := Result{Collided: lc.Collides(x, bottom)}
	if res.Collided {
		lc.safeTicks = 0
	} else {
		lc.safeTicks++
	}

	if t, ok := lc.tierAt(lc.safeTicks); ok && t.Level != lc.current.Level {
		lc.current = t
		res.TierChanged = true
	}
	res.Tier = lc.current
	return res
}

// tierAt returns the tier whose threshold is exactly ticks
func (lc *LaneController) tierAt(ticks uint32) (Tier, bool) {
	for _, t := range lc.tiers {
		if t.Threshold == ticks {
			return t, true
		}
	}
	return Tier{}, false
}

// SafeTicks returns the collision-free tick count
func (lc *LaneController) SafeTicks() uint32 {
	return lc.safeTicks
}

// Tier returns the tier in effect
func (lc *LaneController) Tier() Tier {
	return lc.current
}

// Tiers returns a copy of the speed table
func (lc *LaneController) Tiers() []Tier {
	return append([]Tier(nil), lc.tiers...)
}
