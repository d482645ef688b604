package sys

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// FrameLimiter caps the frame rate of a render loop. The target can change
// between calls; a new target takes effect immediately.
type FrameLimiter struct {
	mu      sync.Mutex
	fps     int
	limiter *rate.Limiter
}

// Wait blocks until the next frame at fps may start. A non-positive fps
// disables limiting.
func (f *FrameLimiter) Wait(ctx context.Context, fps int) error {
	if fps <= 0 {
		return nil
	}

	f.mu.Lock()
	if f.limiter == nil || f.fps != fps {
		f.limiter = rate.NewLimiter(rate.Limit(fps), 1)
		f.fps = fps
	}
	l := f.limiter
	f.mu.Unlock()

	return l.Wait(ctx)
}

// FPS returns the last target passed to Wait
func (f *FrameLimiter) FPS() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fps
}
