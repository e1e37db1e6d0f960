package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Engagic/engagic-sub004/pkg/config"
)

func TestRetryBackoff(t *testing.T) {
	tests := []struct {
		retryCount int
		want       time.Duration
	}{
		{0, 30 * time.Second},
		{1, 60 * time.Second},
		{2, 120 * time.Second},
		{3, 240 * time.Second},
		{4, 5 * time.Minute}, // 480s capped
		{10, 5 * time.Minute},
		{40, 5 * time.Minute}, // shift overflow also caps
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryBackoff(tt.retryCount), "retry %d", tt.retryCount)
	}
}

func TestPollIntervalJitter(t *testing.T) {
	w := &Worker{config: &config.Config{
		ClaimInterval: 5 * time.Second,
		ClaimJitter:   time.Second,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 4*time.Second)
		assert.LessOrEqual(t, d, 6*time.Second)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := &Worker{config: &config.Config{ClaimInterval: 5 * time.Second}}
	assert.Equal(t, 5*time.Second, w.pollInterval())
}
