package llm

import (
	"sync"
	"time"
)

const rateWindow = time.Hour

// RateLimiter caps outbound AI calls to a fixed ceiling per hour. The window
// resets lazily on the first call after it elapses. Each client owns its own
// limiter; there is no package-level state.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int
	count       int
	windowStart time.Time

	now func() time.Time
}

func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit: limit,
		now:   time.Now,
	}
}

// Allow reports whether another call may proceed, incrementing the counter
// if so. Must be checked before any network I/O.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.windowStart) > rateWindow {
		r.count = 0
		r.windowStart = now
	}

	if r.count >= r.limit {
		return false
	}

	r.count++
	return true
}

// Remaining returns how many calls are left in the current window.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.now().Sub(r.windowStart) > rateWindow {
		return r.limit
	}
	left := r.limit - r.count
	if left < 0 {
		return 0
	}
	return left
}
