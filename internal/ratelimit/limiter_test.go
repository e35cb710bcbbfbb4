package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Allow(t *testing.T) {
	limiter := NewClientLimiter(1, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"), "burst spent")
}

func TestClientLimiter_PerClient(t *testing.T) {
	limiter := NewClientLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "separate bucket per client")
}

func TestNewClientLimiter_Defaults(t *testing.T) {
	limiter := NewClientLimiter(0, 0)

	assert.Equal(t, float64(10), limiter.rps)
	assert.Equal(t, 20, limiter.burst)
}
