package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShareRateLimiterWindow(t *testing.T) {
	rl := NewShareRateLimiter(2, time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"), "limits are per client")

	clock = clock.Add(61 * time.Second)
	assert.True(t, rl.Allow("a"))
}

func TestShareRateLimiterDisabled(t *testing.T) {
	rl := NewShareRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("a"))
	}
}

func TestShareRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewShareRateLimiter(5, time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		assert.True(t, rl.Allow(ip))
	}
	assert.Equal(t, 3, rl.Len())

	clock = clock.Add(2 * time.Minute)
	assert.True(t, rl.Allow("10.0.0.9"))
	assert.Equal(t, 1, rl.Len())
}
