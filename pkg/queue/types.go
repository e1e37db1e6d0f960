// Package queue provides the durable priority work queue and its worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrLeaseLost indicates the job was reclaimed by another worker while this
	// one held it. Completion and failure become no-ops.
	ErrLeaseLost = errors.New("queue lease lost")

	// ErrDuplicateJob indicates a non-terminal job already exists for the
	// source URL; the enqueue was a no-op.
	ErrDuplicateJob = errors.New("duplicate job")
)

// Job types dispatched by the processor.
const (
	JobTypeProcessMeeting = "process_meeting"
)

// JobExecutor processes a single claimed job. The executor owns the whole
// processing lifecycle and writes summaries, topics, and matter updates
// progressively; the worker only handles claiming, the lease, and the
// terminal status transition.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.QueueJob) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one job execution.
type ExecutionResult struct {
	// Err is nil on success. A non-nil Err with Permanent=false goes through
	// the retry/backoff path; Permanent=true marks the job failed outright.
	Err       error
	Permanent bool

	// Metadata is stored on the job row on success, e.g. the attachment
	// fingerprint the run processed, which later enqueue decisions compare
	// against.
	Metadata map[string]interface{}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastLeaseSweep   time.Time      `json:"last_lease_sweep"`
	LeasesReclaimed  int            `json:"leases_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  int64     `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
