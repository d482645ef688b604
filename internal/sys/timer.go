// Package sys provides the legacy system services: timers, dialogs, URLs and
// the clipboard.
package sys

import (
	"sync"
	"time"
)

// NanoResolution is the tick rate of NanoTime
const NanoResolution = 1_000_000_000

// Timer is a monotonic tick counter
type Timer interface {
	Value() uint64
	Frequency() uint64
}

// MonotonicTimer counts nanoseconds since it was created. It is used until a
// native timer is installed.
type MonotonicTimer struct {
	start time.Time
}

func NewMonotonicTimer() *MonotonicTimer {
	return &MonotonicTimer{start: time.Now()}
}

func (t *MonotonicTimer) Value() uint64 {
	return uint64(time.Since(t.start))
}

func (t *MonotonicTimer) Frequency() uint64 {
	return NanoResolution
}

// Clock converts timer ticks into legacy time values. The zero value is not
// usable; create one with NewClock.
type Clock struct {
	mu    sync.RWMutex
	timer Timer
}

// NewClock creates a clock reading from timer, or from a monotonic timer when
// timer is nil.
func NewClock(timer Timer) *Clock {
	if timer == nil {
		timer = NewMonotonicTimer()
	}
	return &Clock{timer: timer}
}

// SetTimer replaces the tick source
func (c *Clock) SetTimer(timer Timer) {
	if timer == nil {
		return
	}
	c.mu.Lock()
	c.timer = timer
	c.mu.Unlock()
}

func (c *Clock) source() Timer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timer
}

// Time returns the raw tick count
func (c *Clock) Time() int64 {
	return int64(c.source().Value())
}

// TimerResolution returns the number of ticks per second
func (c *Clock) TimerResolution() int64 {
	return int64(c.source().Frequency())
}

// NanoTime returns the tick count scaled to nanoseconds
func (c *Clock) NanoTime() int64 {
	t := c.source()
	freq := t.Frequency()
	if freq == 0 {
		return 0
	}
	return ticksToNanos(t.Value(), freq)
}

func ticksToNanos(ticks, freq uint64) int64 {
	if freq == NanoResolution {
		return int64(ticks)
	}
	// Split to keep ticks*1e9 from overflowing for large counters.
	whole := ticks / freq
	rem := ticks % freq
	return int64(whole*NanoResolution + rem*NanoResolution/freq)
}
