package system

import "time"

// Clock measures wall-clock frame deltas in seconds. Deltas above max are
// capped so a stalled window does not launch the character across the level.
type Clock struct {
	now  func() time.Time
	last time.Time
	max  float64
}

func NewClock(max float64) *Clock {
	return newClock(time.Now, max)
}

func newClock(now func() time.Time, max float64) *Clock {
	return &Clock{now: now, last: now(), max: max}
}

// Tick returns the seconds elapsed since the previous call.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		dt = 0
	}
	if c.max > 0 && dt > c.max {
		dt = c.max
	}
	return dt
}

func (c *Clock) SetMax(max float64) {
	c.max = max
}
