package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDoublesPerAttempt(t *testing.T) {
	base := 2 * time.Second
	cap := 5 * time.Minute

	assert.Equal(t, 2*time.Second, Backoff(1, base, cap))
	assert.Equal(t, 4*time.Second, Backoff(2, base, cap))
	assert.Equal(t, 8*time.Second, Backoff(3, base, cap))
	assert.Equal(t, 16*time.Second, Backoff(4, base, cap))
}

func TestBackoffCapped(t *testing.T) {
	base := 2 * time.Second
	cap := 5 * time.Minute

	// 2s << 20 is far past the cap
	assert.Equal(t, cap, Backoff(20, base, cap))
	// a base already above the cap is clamped too
	assert.Equal(t, cap, Backoff(1, 10*time.Minute, cap))
}

func TestBackoffClampsLowAttempts(t *testing.T) {
	base := 2 * time.Second
	cap := 5 * time.Minute

	assert.Equal(t, base, Backoff(0, base, cap))
	assert.Equal(t, base, Backoff(-3, base, cap))
}
