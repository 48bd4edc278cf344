// Package weather tracks the day/night background cycle. The mode has no
// gameplay effect; frontends only pick a palette from it.
package weather

import "fmt"

type Mode int

const (
	Day Mode = iota
	Night
)

// DefaultInterval is how long each mode lasts in simulated seconds.
const DefaultInterval = 30.0

func (m Mode) String() string {
	switch m {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) Valid() bool {
	return m == Day || m == Night
}

// Cycle toggles between Day and Night every Interval seconds.
type Cycle struct {
	Mode      Mode
	Interval  float64
	StartedAt float64
}

func NewCycle(interval, now float64) Cycle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Cycle{Mode: Day, Interval: interval, StartedAt: now}
}

// Update flips the mode once the interval has elapsed and reports whether it
// changed.
func (c *Cycle) Update(now float64) bool {
	if c == nil || now-c.StartedAt < c.Interval {
		return false
	}
	if c.Mode == Day {
		c.Mode = Night
	} else {
		c.Mode = Day
	}
	c.StartedAt = now
	return true
}

// SetMode forces a mode and restarts the timer. Unknown modes are ignored.
func (c *Cycle) SetMode(m Mode, now float64) bool {
	if c == nil || !m.Valid() {
		return false
	}
	c.Mode = m
	c.StartedAt = now
	return true
}

// Remaining returns the seconds left before the next toggle.
func (c Cycle) Remaining(now float64) float64 {
	r := c.Interval - (now - c.StartedAt)
	if r < 0 {
		return 0
	}
	return r
}
