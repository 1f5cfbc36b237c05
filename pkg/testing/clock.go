package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/skinny/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// InstallClock makes a new FakeClock the animation clock for the duration
// of the test.
func InstallClock(t testing.TB) *FakeClock {
	t.Helper()
	c := NewFakeClock()
	prev := animation.SetClock(c)
	t.Cleanup(func() { animation.SetClock(prev) })
	return c
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Step advances the clock by d and delivers one frame to the active
// tickers.
func (c *FakeClock) Step(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}
