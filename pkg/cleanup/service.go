// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes matters whose last appearance was removed
//   - Prunes old terminal queue jobs
//   - Evicts processing-cache entries not hit in the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    *config.Config
	client *ent.Client
	svcs   *services.Services

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.Config, client *ent.Client, svcs *services.Services) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		svcs:   svcs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.cfg.CleanupInterval,
		"cache_retention", s.cfg.CacheRetention,
		"job_retention", s.cfg.JobRetention)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes every retention task once. Exported so the status command
// can trigger a sweep on demand.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneOrphanedMatters(ctx)
	s.pruneTerminalJobs(ctx)
	s.evictStaleCache(ctx)
}

func (s *Service) pruneOrphanedMatters(ctx context.Context) {
	count, err := s.svcs.Matter.PruneOrphans(ctx)
	if err != nil {
		slog.Error("Retention: matter prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned orphaned matters", "count", count)
	}
}

func (s *Service) pruneTerminalJobs(ctx context.Context) {
	now := time.Now()
	// Completed jobs carry the attachment fingerprints the enqueue decision
	// reads, so they outlive the historical sync window.
	completedRetention := s.cfg.JobRetention
	if s.cfg.HistoricalCutoff > completedRetention {
		completedRetention = s.cfg.HistoricalCutoff
	}
	count, err := queue.PruneTerminal(ctx, s.client,
		now.Add(-s.cfg.JobRetention),
		now.Add(-completedRetention))
	if err != nil {
		slog.Error("Retention: queue prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal queue jobs", "count", count)
	}
}

func (s *Service) evictStaleCache(ctx context.Context) {
	count, err := s.svcs.Cache.EvictStale(ctx, time.Now().Add(-s.cfg.CacheRetention))
	if err != nil {
		slog.Error("Retention: cache eviction failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: evicted stale cache entries", "count", count)
	}
}
