package memory

import "time"

// Clock returns a fixed instant, advanced explicitly by tests.
type Clock struct {
	current time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{current: start.UTC()}
}

func (c *Clock) Now() time.Time { return c.current }

func (c *Clock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
