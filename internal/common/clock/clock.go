package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/standupbot/internal/common/clock Clock

// Clock provides the current instant. Window and trigger logic never read the
// wall clock directly.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC; callers convert to the standup timezone
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current time in UTC
func (c *System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a clock that only moves when told to, for driving a standup day
// minute by minute
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock stopped at now
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now returns the stopped time
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to now
func (c *Fixed) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d and returns the new time
func (c *Fixed) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
