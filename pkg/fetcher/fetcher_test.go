package fetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriority(t *testing.T) {
	now := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"four days out", now.Add(4*24*time.Hour + 6*time.Hour), 104},
		{"today", now.Add(2 * time.Hour), 100},
		{"yesterday", now.Add(-26 * time.Hour), 99},
		{"ninety days past", now.Add(-90 * 24 * time.Hour), 10},
		{"beyond decay floor", now.Add(-200 * 24 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Priority(now, tt.date))
		})
	}
}
