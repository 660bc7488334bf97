package core

import "time"

// Clock is a polled periodic trigger. The owner calls Due from its event loop,
// so ticks never interleave with other work on that loop.
type Clock struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
}

// NewClock returns a Clock armed to fire one interval from now. A nil now uses
// time.Now.
func NewClock(interval time.Duration, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.SetInterval(interval)
	return c
}

// Interval returns the current cadence.
func (c *Clock) Interval() time.Duration { return c.interval }

// SetInterval cancels the pending tick and re-arms the clock one new interval
// from now. Non-positive intervals fall back to one millisecond.
func (c *Clock) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	c.interval = interval
	c.next = c.now().Add(interval)
}

// Due reports whether a tick boundary has passed since the last tick. It
// returns true at most once per boundary. Boundaries missed while the owner
// was busy are dropped rather than replayed.
func (c *Clock) Due() bool {
	now := c.now()
	if now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(c.interval)
	if !c.next.After(now) {
		c.next = now.Add(c.interval)
	}
	return true
}

// Until returns the time left before the next tick, never negative.
func (c *Clock) Until() time.Duration {
	d := c.next.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}
