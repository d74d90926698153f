// Package clock pins the instant bookings, grants and rule windows are
// evaluated against.
package clock

import (
	"sync/atomic"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

// Now is UTC: birthdays and rule timespans compare on UTC dates.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock stands still until a test moves it. Safe across goroutines.
type MockClock struct {
	now atomic.Pointer[time.Time]
}

func NewMockClock(t time.Time) *MockClock {
	c := &MockClock{}
	c.Set(t)
	return c
}

func (c *MockClock) Now() time.Time {
	return *c.now.Load()
}

func (c *MockClock) Set(t time.Time) {
	c.now.Store(&t)
}

func (c *MockClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}
