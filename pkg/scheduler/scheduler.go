// Package scheduler drives the recurring city sync loop: every interval it
// fans out across vendors, running up to FETCH_CONCURRENCY of a vendor's
// cities at once. Request spacing toward the vendor stays with the rate
// limiter, which serializes callers per vendor regardless of concurrency.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/fetcher"
)

// Scheduler runs SyncAll on a fixed interval.
type Scheduler struct {
	fetcher *fetcher.Fetcher
	cfg     *config.Config

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a scheduler over the shared fetcher.
func New(f *fetcher.Fetcher, cfg *config.Config) *Scheduler {
	return &Scheduler{fetcher: f, cfg: cfg}
}

// Start launches the sync loop. The first sweep runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Sync scheduler started", "interval", s.cfg.SyncInterval)
}

// Stop signals the loop to exit and waits for the in-flight sweep to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Sync scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	result, err := SyncAll(ctx, s.fetcher, s.cfg)
	if err != nil {
		slog.Error("Sync sweep aborted", "error", err)
		return
	}
	slog.Info("Sync sweep complete",
		"cities", result.Cities, "failed", result.Failed, "enqueued", result.Enqueued)
}

// SweepResult aggregates one sweep across every active city.
type SweepResult struct {
	Cities   int
	Failed   int
	Meetings int
	Items    int
	Enqueued int
}

// SyncAll syncs every active city once. Cities are grouped by vendor and the
// vendor groups run in parallel; within a group up to cfg.FetchConcurrency
// cities run at once (default 1, strictly sequential). A city that keeps
// failing after its retry budget is counted and skipped, never fatal to the
// sweep.
func SyncAll(ctx context.Context, f *fetcher.Fetcher, cfg *config.Config) (*SweepResult, error) {
	byVendor := make(map[string][]config.CityConfig)
	for _, city := range cfg.Cities {
		if city.Status != "active" {
			continue
		}
		byVendor[city.Vendor] = append(byVendor[city.Vendor], city)
	}

	perVendor := cfg.FetchConcurrency
	if perVendor < 1 {
		perVendor = 1
	}

	result := &SweepResult{}
	results := make(chan *fetcher.SyncStats)
	failures := make(chan string)

	g, gctx := errgroup.WithContext(ctx)
	for vendor, cities := range byVendor {
		g.Go(func() error {
			vg, vctx := errgroup.WithContext(gctx)
			vg.SetLimit(perVendor)
			for _, city := range cities {
				vg.Go(func() error {
					if vctx.Err() != nil {
						return vctx.Err()
					}
					stats, err := syncWithRetry(vctx, f, city, cfg.CitySyncRetries)
					if err != nil {
						slog.Error("City sync failed after retries",
							"banana", city.Banana, "vendor", vendor, "error", err)
						failures <- city.Banana
						return nil
					}
					results <- stats
					return nil
				})
			}
			return vg.Wait()
		})
	}

	collectDone := make(chan struct{})
	go func() {
		defer close(collectDone)
		for {
			select {
			case stats, ok := <-results:
				if !ok {
					return
				}
				result.Cities++
				result.Meetings += stats.Meetings
				result.Items += stats.Items
				result.Enqueued += stats.Enqueued
			case <-failures:
				result.Cities++
				result.Failed++
			}
		}
	}()

	err := g.Wait()
	close(results)
	<-collectDone
	if err != nil {
		return result, err
	}
	return result, nil
}

// syncWithRetry runs one city sync with exponential backoff. Context
// cancellation stops the retry sequence immediately.
func syncWithRetry(ctx context.Context, f *fetcher.Fetcher, city config.CityConfig, retries int) (*fetcher.SyncStats, error) {
	var stats *fetcher.SyncStats

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)),
		ctx)

	operation := func() error {
		var err error
		stats, err = f.SyncCity(ctx, city)
		return err
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return stats, nil
}
