package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_CeilingBlocks(t *testing.T) {
	r := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, r.Allow(), "call %d should be allowed", i+1)
	}
	assert.False(t, r.Allow(), "call over the ceiling should be rejected")
	assert.Equal(t, 0, r.Remaining())
}

func TestRateLimiter_WindowReset(t *testing.T) {
	now := time.Now()
	r := NewRateLimiter(2)
	r.now = func() time.Time { return now }

	assert.True(t, r.Allow())
	assert.True(t, r.Allow())
	assert.False(t, r.Allow())

	// Just inside the window: still blocked.
	now = now.Add(59 * time.Minute)
	assert.False(t, r.Allow())

	// Past the window: counter resets.
	now = now.Add(2 * time.Minute)
	assert.True(t, r.Allow())
	assert.Equal(t, 1, r.Remaining())
}
