// Package adapters contains the vendor adapter contract and the concrete
// vendor integrations. Adapters fetch and normalize meeting data only; they
// never touch the database or the queue.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Sentinel errors for adapter operations.
var (
	// ErrUnknownVendor indicates no adapter is registered for the vendor tag.
	ErrUnknownVendor = errors.New("unknown vendor")

	// ErrVendorRequest indicates the vendor endpoint failed or returned
	// malformed data. The city's sync aborts; siblings are unaffected.
	ErrVendorRequest = errors.New("vendor request failed")
)

// Adapter is the per-vendor integration. One adapter instance serves every
// city on that vendor, sharing a pooled HTTP session.
//
// FetchMeetings returns a FetchResult whose Success flag distinguishes
// "adapter failed" from "zero meetings in the window".
type Adapter interface {
	Vendor() string
	FetchMeetings(ctx context.Context, city config.CityConfig, daysBack, daysForward int) (*models.FetchResult, error)
}

// Registry holds one adapter per vendor tag.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry builds a registry with the built-in vendor adapters wired to
// shared sessions from cfg's vendor settings.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range []Adapter{
		NewPrimeGov(cfg),
		NewGranicus(cfg),
		NewLegistar(cfg),
		NewCivicClerk(cfg),
		NewCivicPlus(cfg),
	} {
		r.Register(a)
	}
	return r
}

// Register adds (or replaces) the adapter for its vendor tag.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[a.Vendor()]; exists {
		slog.Warn("Replacing registered adapter", "vendor", a.Vendor())
	}
	r.adapters[a.Vendor()] = a
}

// Get returns the adapter for a vendor tag.
func (r *Registry) Get(vendor string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVendor, vendor)
	}
	return a, nil
}

// Vendors lists registered vendor tags in sorted order.
func (r *Registry) Vendors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.adapters))
	for v := range r.adapters {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
