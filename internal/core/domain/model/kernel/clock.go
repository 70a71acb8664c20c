package kernel

import "time"

// Clock abstracts the wall clock so transitions and retention sweeps can be driven by tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Set moves it.
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.At
}

func (c *FixedClock) Set(at time.Time) {
	c.At = at
}

func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
