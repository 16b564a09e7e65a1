package clock

import "time"

// Clock supplies the current UTC instant. Identifier generators and the
// order factory take one explicitly so time never comes from an ambient
// source.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a settable clock for tests and replays.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t.UTC()}
}

func (c *Fixed) Now() time.Time {
	return c.current
}

func (c *Fixed) SetTime(t time.Time) {
	c.current = t.UTC()
}

func (c *Fixed) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
