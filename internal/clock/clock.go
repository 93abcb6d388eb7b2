// internal/clock/clock.go
package clock

import (
	"sync"
	"time"
)

// Clock is the time source used for wall-clock timers (ability cooldown
// expiry, slow and stun deadlines).
type Clock interface {
	Now() time.Time
}

// Real reads the system monotonic clock.
type Real struct{}

// NewReal creates a system clock.
func NewReal() *Real {
	return &Real{}
}

// Now returns time.Now.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable clock for tests and headless simulation.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock creates a mock clock starting at start.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the current mocked time.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
