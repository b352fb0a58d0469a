package testfixtures

import (
	"time"

	"github.com/example/meeting-planner/internal/scheduler"
)

// Clock is a fixed time source for tests.
type Clock struct {
	current time.Time
}

// NewClock returns a clock stopped at start. When start is the zero value,
// the shared ReferenceTime is used.
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime()
	}
	return &Clock{current: start}
}

// Now returns the instant the clock is stopped at.
func (c *Clock) Now() time.Time {
	return c.current
}

// NowFunc exposes Now for injection. A nil clock yields time.Now.
func (c *Clock) NowFunc() func() time.Time {
	if c == nil {
		return time.Now
	}
	return c.Now
}

// Today returns the calendar day of the clock.
func (c *Clock) Today() scheduler.Date {
	return scheduler.DateOf(c.Now())
}
