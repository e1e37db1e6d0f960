package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/metrics"
)

// WorkerPool manages a pool of queue workers plus the background lease sweep.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.Config
	executor JobExecutor
	sink     metrics.Sink
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Lease sweep state
	sweepMu         sync.Mutex
	lastLeaseSweep  time.Time
	leasesReclaimed int
}

// NewWorkerPool creates a new worker pool. sink may be nil (metrics disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.Config, executor JobExecutor, sink metrics.Sink) *WorkerPool {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		sink:     sink,
		workers:  make([]*Worker, 0, cfg.LLMConcurrency),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the lease sweep background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.LLMConcurrency)

	for i := 0; i < p.config.LLMConcurrency; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p.sink)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runLeaseSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// runLeaseSweep periodically returns expired-lease jobs to pending. Claim
// already reclaims expired jobs on demand; the sweep keeps queue depth
// honest even when no worker is polling. All pods run this independently.
func (p *WorkerPool) runLeaseSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.QueueLeaseTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweepExpiredLeases(ctx); err != nil {
				slog.Error("Lease sweep failed", "error", err)
			}
			p.reportQueueDepth(ctx)
		}
	}
}

// sweepExpiredLeases moves processing jobs with expired leases back to pending.
func (p *WorkerPool) sweepExpiredLeases(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.QueueLeaseTTL)

	n, err := p.client.QueueJob.Update().
		Where(
			queuejob.StatusEQ(queuejob.StatusProcessing),
			queuejob.StartedAtNotNil(),
			queuejob.StartedAtLT(threshold),
		).
		SetStatus(queuejob.StatusPending).
		ClearWorkerID().
		ClearStartedAt().
		SetErrorMessage(fmt.Sprintf("lease expired after %v", p.config.QueueLeaseTTL)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep expired leases: %w", err)
	}

	p.sweepMu.Lock()
	p.lastLeaseSweep = time.Now()
	p.leasesReclaimed += n
	p.sweepMu.Unlock()

	if n > 0 {
		slog.Warn("Reclaimed expired leases", "count", n)
	}
	return nil
}

// reportQueueDepth publishes per-status depth to the metrics sink.
func (p *WorkerPool) reportQueueDepth(ctx context.Context) {
	for _, status := range []queuejob.Status{
		queuejob.StatusPending, queuejob.StatusProcessing, queuejob.StatusDeadLetter,
	} {
		n, err := p.client.QueueJob.Query().
			Where(queuejob.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			slog.Warn("Failed to count queue depth", "status", status, "error", err)
			continue
		}
		p.sink.RecordQueueDepth(string(status), n)
	}
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.QueueJob.Query().
		Where(
			queuejob.StatusEQ(queuejob.StatusPending),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeJobs, errA := p.client.QueueJob.Query().
		Where(
			queuejob.StatusEQ(queuejob.StatusProcessing),
			queuejob.WorkerIDHasPrefix(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeJobs <= p.config.LLMConcurrency && dbHealthy

	p.sweepMu.Lock()
	lastLeaseSweep := p.lastLeaseSweep
	leasesReclaimed := p.leasesReclaimed
	p.sweepMu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active jobs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		ActiveJobs:      activeJobs,
		MaxConcurrent:   p.config.LLMConcurrency,
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastLeaseSweep:  lastLeaseSweep,
		LeasesReclaimed: leasesReclaimed,
	}
}
