package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/crab-arena/parameter"
)

// TimeProvider supplies wall-clock readings to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

func (MonotonicTimeProvider) Now() time.Time { return time.Now() }

// ManualTimeProvider only moves when told to; used by tests and the bench runner
type ManualTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

func (m *ManualTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameClock turns successive clock readings into frame deltas
// Deltas are capped at parameter.MaxFrameDelta so a stalled process does not
// teleport balls through paddles on resume
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

func NewFrameClock(p TimeProvider) *FrameClock {
	if p == nil {
		p = MonotonicTimeProvider{}
	}
	return &FrameClock{provider: p}
}

// Tick returns the time since the previous Tick; the first call returns 0
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxFrameDelta {
		return parameter.MaxFrameDelta
	}
	return dt
}
