package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.Config
	executor JobExecutor
	sink     metrics.Sink
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  int64
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker. sink may be nil (metrics disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.Config, executor JobExecutor, sink metrics.Sink) *Worker {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		sink:         sink,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy across concurrent workers but
	// bounded by worker count and mitigated by poll jitter.
	activeCount, err := w.client.QueueJob.Query().
		Where(queuejob.StatusEQ(queuejob.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.LLMConcurrency {
		return ErrAtCapacity
	}

	job, err := Claim(ctx, w.client, w.id, w.config.QueueLeaseTTL)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "source_url", job.SourceURL, "worker_id", w.id)
	log.Info("Job claimed", "job_type", job.JobType, "priority", job.Priority, "retry_count", job.RetryCount)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, 0)

	// The lease expires at QueueLeaseTTL, so the job must finish inside it.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.QueueLeaseTTL)
	defer cancelJob()

	result := w.executor.Execute(jobCtx, job)

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{Err: fmt.Errorf("job timed out after %v", w.config.QueueLeaseTTL)}
		case errors.Is(jobCtx.Err(), context.Canceled):
			result = &ExecutionResult{Err: context.Canceled}
		default:
			result = &ExecutionResult{Err: fmt.Errorf("executor returned nil result"), Permanent: true}
		}
	}

	// A cancelled or timed-out execution is always retryable.
	if result.Err == nil && jobCtx.Err() != nil {
		result = &ExecutionResult{Err: jobCtx.Err()}
	}

	// Terminal status update uses a background context; the job context may
	// already be cancelled during shutdown.
	if err := w.finishJob(context.Background(), job, result); err != nil {
		if errors.Is(err, ErrLeaseLost) {
			log.Warn("Job was reclaimed by another worker, discarding result")
			return nil
		}
		log.Error("Failed to record job outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	if result.Err != nil {
		log.Info("Job failed", "error", result.Err, "permanent", result.Permanent)
	} else {
		log.Info("Job complete")
	}
	return nil
}

// finishJob records the terminal state for an executed job.
func (w *Worker) finishJob(ctx context.Context, job *ent.QueueJob, result *ExecutionResult) error {
	if result.Err == nil {
		return Complete(ctx, w.client, job, result.Metadata)
	}
	return Fail(ctx, w.client, job, result.Err, result.Permanent, w.config.MaxRetries)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.ClaimInterval
	jitter := w.config.ClaimJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
