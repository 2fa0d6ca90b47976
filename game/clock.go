package game

import "time"

// Clock is the millisecond time source used to score a race
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the monotonic clock relative to its creation
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock creates a clock that starts at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// NowMillis implements Clock
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.epoch).Milliseconds()
}
