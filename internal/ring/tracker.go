// Package ring tracks read/write positions over a fixed-size circular buffer
// whose payload lives in caller-owned parallel arrays.
package ring

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glcompat/glcompat/internal/logger"
	"golang.org/x/time/rate"
)

// ErrInvalidCapacity is returned when a tracker is created with capacity <= 0
var ErrInvalidCapacity = errors.New("ring capacity must be positive")

// Tracker counts unread entries in a bounded single-producer/single-consumer
// ring. Producers write their payload at NextWritePosition and then call Push;
// consumers call Next and then read the payload at CurrentReadPosition.
//
// The slot at the read position is the "current" entry. A full ring that is
// pushed again discards its oldest unread entry instead of blocking.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	count    int
	readPos  int
	writePos int

	name    string
	dropLog rate.Sometimes
	dropped uint64
}

// New creates a tracker with the given logical slot count. The name is only
// used in diagnostics.
func New(name string, capacity int) (*Tracker, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%s: %w (got %d)", name, ErrInvalidCapacity, capacity)
	}
	return &Tracker{
		capacity: capacity,
		writePos: 1 % capacity,
		name:     name,
		dropLog:  rate.Sometimes{Interval: time.Second},
	}, nil
}

// Push records that the producer has written the slot at NextWritePosition.
func (t *Tracker) Push() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count == t.capacity {
		// Full: the write just landed on the oldest unread slot.
		t.readPos = (t.readPos + 1) % t.capacity
		t.dropped++
		dropped := t.dropped
		t.dropLog.Do(func() {
			logger.Warnf("Dropping %s events due to insufficient polling frequency (%d dropped so far)", t.name, dropped)
		})
	} else {
		t.count++
	}

	t.writePos = (t.writePos + 1) % t.capacity
}

// Next advances the read position to the next unread entry. It returns false,
// without touching any position, when nothing is pending.
func (t *Tracker) Next() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count == 0 {
		return false
	}

	t.count--
	t.readPos = (t.readPos + 1) % t.capacity
	return true
}

// Capacity returns the fixed logical slot count
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Count returns the number of unread entries
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Dropped returns how many entries were overwritten before being read
func (t *Tracker) Dropped() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// CurrentReadPosition returns the slot of the current entry
func (t *Tracker) CurrentReadPosition() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readPos
}

// LastReadPosition returns the slot read before the current one
func (t *Tracker) LastReadPosition() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return (t.readPos + t.capacity - 1) % t.capacity
}

// LastWritePosition returns the slot most recently pushed
func (t *Tracker) LastWritePosition() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return (t.writePos + t.capacity - 1) % t.capacity
}

// NextWritePosition returns the slot the producer should fill before Push
func (t *Tracker) NextWritePosition() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writePos
}
