package adapters

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
)

// RateLimiter enforces per-vendor politeness delays. State is in-process and
// mutex-guarded; delays come from the vendor settings table (primegov 3s,
// granicus 4s, civicplus 8s with 0-2s jitter, default 5s).
type RateLimiter struct {
	cfg *config.Config

	mu          sync.Mutex
	lastRequest map[string]time.Time
}

// NewRateLimiter builds a limiter over the config's vendor settings.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	return &RateLimiter{
		cfg:         cfg,
		lastRequest: make(map[string]time.Time),
	}
}

// Wait blocks until the vendor's delay since its last request has elapsed,
// or the context is cancelled. The reservation is taken before sleeping so
// concurrent callers queue up behind each other.
func (rl *RateLimiter) Wait(ctx context.Context, vendor string) error {
	setting := rl.cfg.Vendors.Get(vendor)
	delay := setting.RateLimitDelay
	if setting.RateLimitJitter > 0 {
		delay += time.Duration(rand.Int64N(int64(setting.RateLimitJitter)))
	}

	rl.mu.Lock()
	now := time.Now()
	earliest := rl.lastRequest[vendor].Add(delay)
	if earliest.Before(now) {
		earliest = now
	}
	rl.lastRequest[vendor] = earliest
	rl.mu.Unlock()

	wait := time.Until(earliest)
	if wait <= 0 {
		return nil
	}

	slog.Debug("Rate limit wait", "vendor", vendor, "wait", wait)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
