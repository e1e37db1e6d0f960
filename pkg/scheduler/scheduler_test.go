package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/pkg/adapters"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/fetcher"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/scheduler"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

// countingAdapter succeeds for every city except the ones listed in fail.
type countingAdapter struct {
	vendor string
	fail   map[string]bool
	calls  atomic.Int32
}

func (a *countingAdapter) Vendor() string { return a.vendor }

func (a *countingAdapter) FetchMeetings(_ context.Context, city config.CityConfig, _, _ int) (*models.FetchResult, error) {
	a.calls.Add(1)
	if a.fail[city.Banana] {
		return &models.FetchResult{Success: false, Error: "vendor down"}, nil
	}
	return &models.FetchResult{
		Success: true,
		Meetings: []models.MeetingRecord{{
			VendorID:  city.Banana + "-m1",
			Title:     "Regular Meeting",
			Start:     time.Now().Add(48 * time.Hour).Format("2006-01-02T15:04:05"),
			AgendaURL: "https://example.gov/" + city.Banana + "/agenda",
		}},
	}, nil
}

// gateAdapter reports each entry and blocks until released, so tests can
// observe how many cities are in flight at once.
type gateAdapter struct {
	vendor  string
	entered chan string
	release chan struct{}
}

func (a *gateAdapter) Vendor() string { return a.vendor }

func (a *gateAdapter) FetchMeetings(ctx context.Context, city config.CityConfig, _, _ int) (*models.FetchResult, error) {
	a.entered <- city.Banana
	select {
	case <-a.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &models.FetchResult{Success: true}, nil
}

func sweepConfig(cities []config.CityConfig) *config.Config {
	return &config.Config{
		SyncInterval:     time.Hour,
		FetchConcurrency: 1,
		HistoricalCutoff: 180 * 24 * time.Hour,
		FutureCutoff:     60 * 24 * time.Hour,
		CitySyncRetries:  0,
		Vendors: config.VendorSettings{
			"default": {RateLimitDelay: time.Millisecond},
		},
		Cities: cities,
	}
}

func TestSyncAllFansOutAcrossVendors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	svcs := services.New(client.Client, client.DB())
	ctx := context.Background()

	cities := []config.CityConfig{
		{Banana: "paloaltoCA", Name: "Palo Alto", State: "CA", Vendor: "alpha", VendorSlug: "pa", Status: "active", Timezone: "America/Los_Angeles"},
		{Banana: "oaklandCA", Name: "Oakland", State: "CA", Vendor: "alpha", VendorSlug: "oak", Status: "active", Timezone: "America/Los_Angeles"},
		{Banana: "nashvilleTN", Name: "Nashville", State: "TN", Vendor: "beta", VendorSlug: "nash", Status: "active", Timezone: "America/Chicago"},
		{Banana: "pausedWA", Name: "Paused", State: "WA", Vendor: "beta", VendorSlug: "p", Status: "paused", Timezone: "America/Los_Angeles"},
	}
	cfg := sweepConfig(cities)
	require.NoError(t, svcs.City.SyncRegistry(ctx, cities))

	alpha := &countingAdapter{vendor: "alpha"}
	beta := &countingAdapter{vendor: "beta"}
	registry := adapters.NewRegistry(cfg)
	registry.Register(alpha)
	registry.Register(beta)

	f := fetcher.New(client.Client, registry, adapters.NewRateLimiter(cfg), svcs, cfg, nil)

	result, err := scheduler.SyncAll(ctx, f, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Cities, "paused city is not synced")
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 3, result.Meetings)
	assert.Equal(t, int32(2), alpha.calls.Load())
	assert.Equal(t, int32(1), beta.calls.Load())
}

func TestSyncAllCountsFailuresWithoutAborting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	svcs := services.New(client.Client, client.DB())
	ctx := context.Background()

	cities := []config.CityConfig{
		{Banana: "downCA", Name: "Down", State: "CA", Vendor: "alpha", VendorSlug: "d", Status: "active", Timezone: "America/Los_Angeles"},
		{Banana: "upCA", Name: "Up", State: "CA", Vendor: "alpha", VendorSlug: "u", Status: "active", Timezone: "America/Los_Angeles"},
	}
	cfg := sweepConfig(cities)
	require.NoError(t, svcs.City.SyncRegistry(ctx, cities))

	alpha := &countingAdapter{vendor: "alpha", fail: map[string]bool{"downCA": true}}
	registry := adapters.NewRegistry(cfg)
	registry.Register(alpha)

	f := fetcher.New(client.Client, registry, adapters.NewRateLimiter(cfg), svcs, cfg, nil)

	result, err := scheduler.SyncAll(ctx, f, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Cities)
	assert.Equal(t, 1, result.Failed)

	city, err := svcs.City.Get(ctx, "downCA")
	require.NoError(t, err)
	assert.Positive(t, city.SyncErrorCount)

	city, err = svcs.City.Get(ctx, "upCA")
	require.NoError(t, err)
	assert.NotNil(t, city.LastSyncedAt)
}

func TestSyncAllRunsVendorCitiesConcurrently(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	svcs := services.New(client.Client, client.DB())
	ctx := context.Background()

	cities := []config.CityConfig{
		{Banana: "paloaltoCA", Name: "Palo Alto", State: "CA", Vendor: "alpha", VendorSlug: "pa", Status: "active", Timezone: "America/Los_Angeles"},
		{Banana: "oaklandCA", Name: "Oakland", State: "CA", Vendor: "alpha", VendorSlug: "oak", Status: "active", Timezone: "America/Los_Angeles"},
	}
	cfg := sweepConfig(cities)
	cfg.FetchConcurrency = 2
	require.NoError(t, svcs.City.SyncRegistry(ctx, cities))

	alpha := &gateAdapter{
		vendor:  "alpha",
		entered: make(chan string),
		release: make(chan struct{}),
	}
	registry := adapters.NewRegistry(cfg)
	registry.Register(alpha)

	f := fetcher.New(client.Client, registry, adapters.NewRateLimiter(cfg), svcs, cfg, nil)

	done := make(chan *scheduler.SweepResult, 1)
	go func() {
		result, err := scheduler.SyncAll(ctx, f, cfg)
		assert.NoError(t, err)
		done <- result
	}()

	// Both cities must enter the adapter while neither has been released.
	inFlight := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case banana := <-alpha.entered:
			inFlight[banana] = true
		case <-time.After(5 * time.Second):
			t.Fatalf("only %d of 2 cities in flight, concurrency limit not applied", len(inFlight))
		}
	}
	assert.Len(t, inFlight, 2)
	close(alpha.release)

	result := <-done
	assert.Equal(t, 2, result.Cities)
	assert.Equal(t, 0, result.Failed)
}

func TestSchedulerStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	svcs := services.New(client.Client, client.DB())

	cfg := sweepConfig(nil)
	registry := adapters.NewRegistry(cfg)
	f := fetcher.New(client.Client, registry, adapters.NewRateLimiter(cfg), svcs, cfg, nil)

	s := scheduler.New(f, cfg)
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
