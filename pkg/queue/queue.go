package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
)

// Retry schedule constants.
const (
	baseRetryDelay = 30 * time.Second
	maxRetryDelay  = 5 * time.Minute
)

// retryBackoff returns the delay before the nth retry (0-indexed):
// 30s, 60s, 120s, 240s, then capped at 5 minutes.
func retryBackoff(retryCount int) time.Duration {
	d := baseRetryDelay << uint(retryCount)
	if d > maxRetryDelay || d <= 0 {
		return maxRetryDelay
	}
	return d
}

// EnqueueInput describes a job to add to the queue.
type EnqueueInput struct {
	SourceURL string
	MeetingID string
	Banana    string
	JobType   string
	Priority  int
	Payload   map[string]interface{}
}

// Enqueue adds a job, keyed uniquely by source URL. A second enqueue while a
// job for the same URL is non-terminal is a no-op (ErrDuplicateJob). If the
// existing job is terminal, it is resurrected to pending with the new
// priority and its retry count preserved.
func Enqueue(ctx context.Context, client *ent.Client, in EnqueueInput) (*ent.QueueJob, error) {
	job, err := client.QueueJob.Create().
		SetSourceURL(in.SourceURL).
		SetMeetingID(in.MeetingID).
		SetBanana(in.Banana).
		SetJobType(in.JobType).
		SetPriority(in.Priority).
		SetPayload(in.Payload).
		Save(ctx)
	if err == nil {
		return job, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	existing, err := client.QueueJob.Query().
		Where(queuejob.SourceURLEQ(in.SourceURL)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing job for %s: %w", in.SourceURL, err)
	}

	switch existing.Status {
	case queuejob.StatusCompleted, queuejob.StatusFailed, queuejob.StatusDeadLetter:
		resurrected, err := existing.Update().
			SetStatus(queuejob.StatusPending).
			SetPriority(in.Priority).
			SetPayload(in.Payload).
			ClearNotBefore().
			ClearWorkerID().
			ClearErrorMessage().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resurrect job %d: %w", existing.ID, err)
		}
		slog.Info("Resurrected terminal job",
			"job_id", resurrected.ID, "source_url", in.SourceURL, "priority", in.Priority)
		return resurrected, nil
	default:
		return existing, ErrDuplicateJob
	}
}

// FindBySourceURL returns the job holding the idempotency key, or nil when no
// job exists for the URL.
func FindBySourceURL(ctx context.Context, client *ent.Client, sourceURL string) (*ent.QueueJob, error) {
	job, err := client.QueueJob.Query().
		Where(queuejob.SourceURLEQ(sourceURL)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up job for %s: %w", sourceURL, err)
	}
	return job, nil
}

// Claim atomically takes the next claimable job using FOR UPDATE SKIP LOCKED.
// Claimable means pending with its backoff schedule passed, or processing
// under an expired lease (the previous holder gets ErrLeaseLost on finish).
// Highest priority wins; FIFO within equal priority.
func Claim(ctx context.Context, client *ent.Client, workerID string, leaseTTL time.Duration) (*ent.QueueJob, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Truncate to Postgres timestamp precision so the lease guard in
	// Complete/Fail compares equal after a round trip.
	now := time.Now().Truncate(time.Microsecond)
	leaseExpiry := now.Add(-leaseTTL)

	job, err := tx.QueueJob.Query().
		Where(
			queuejob.Or(
				queuejob.And(
					queuejob.StatusEQ(queuejob.StatusPending),
					queuejob.Or(
						queuejob.NotBeforeIsNil(),
						queuejob.NotBeforeLTE(now),
					),
				),
				queuejob.And(
					queuejob.StatusEQ(queuejob.StatusProcessing),
					queuejob.StartedAtNotNil(),
					queuejob.StartedAtLT(leaseExpiry),
				),
			),
		).
		Order(ent.Desc(queuejob.FieldPriority), ent.Asc(queuejob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query claimable job: %w", err)
	}

	if job.Status == queuejob.StatusProcessing {
		slog.Warn("Reclaiming job with expired lease",
			"job_id", job.ID, "previous_worker", job.WorkerID, "started_at", job.StartedAt)
	}

	job, err = job.Update().
		SetStatus(queuejob.StatusProcessing).
		SetWorkerID(workerID).
		SetStartedAt(now).
		ClearNotBefore().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job %d: %w", job.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// Complete marks a job done. The update is guarded by worker id and lease
// start time: if another worker reclaimed the job in the meantime, nothing
// matches and ErrLeaseLost is returned.
func Complete(ctx context.Context, client *ent.Client, job *ent.QueueJob, metadata map[string]interface{}) error {
	if job.StartedAt == nil {
		return fmt.Errorf("job %d has no lease start", job.ID)
	}
	update := client.QueueJob.Update().
		Where(
			queuejob.IDEQ(job.ID),
			queuejob.StatusEQ(queuejob.StatusProcessing),
			queuejob.WorkerIDEQ(job.WorkerID),
			queuejob.StartedAtEQ(*job.StartedAt),
		).
		SetStatus(queuejob.StatusCompleted).
		SetCompletedAt(time.Now())
	if len(metadata) > 0 {
		update.SetProcessingMetadata(metadata)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job %d: %w", job.ID, err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Fail records a job failure under the same lease guard as Complete.
// A retryable failure with retries remaining goes back to pending at reduced
// priority, scheduled after an exponential backoff. Exhausted or permanent
// failures are terminal: dead_letter needs operator intervention, failed can
// be resurrected by a later enqueue.
func Fail(ctx context.Context, client *ent.Client, job *ent.QueueJob, execErr error, permanent bool, maxRetries int) error {
	if job.StartedAt == nil {
		return fmt.Errorf("job %d has no lease start", job.ID)
	}

	now := time.Now()
	update := client.QueueJob.Update().
		Where(
			queuejob.IDEQ(job.ID),
			queuejob.StatusEQ(queuejob.StatusProcessing),
			queuejob.WorkerIDEQ(job.WorkerID),
			queuejob.StartedAtEQ(*job.StartedAt),
		).
		SetErrorMessage(execErr.Error()).
		ClearWorkerID()

	switch {
	case permanent:
		update = update.
			SetStatus(queuejob.StatusFailed).
			SetFailedAt(now)
	case job.RetryCount+1 >= maxRetries:
		update = update.
			SetStatus(queuejob.StatusDeadLetter).
			SetRetryCount(job.RetryCount + 1).
			SetFailedAt(now)
		slog.Warn("Job moved to dead letter",
			"job_id", job.ID, "source_url", job.SourceURL, "retries", job.RetryCount+1, "error", execErr)
	default:
		update = update.
			SetStatus(queuejob.StatusPending).
			SetRetryCount(job.RetryCount + 1).
			SetPriority(job.Priority - 1).
			SetNotBefore(now.Add(retryBackoff(job.RetryCount)))
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record failure for job %d: %w", job.ID, err)
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}

// Stats summarizes queue depth by status for operational surfaces.
type Stats struct {
	Pending     int        `json:"pending"`
	Processing  int        `json:"processing"`
	Completed   int        `json:"completed"`
	Failed      int        `json:"failed"`
	DeadLetter  int        `json:"dead_letter"`
	OldestReady *time.Time `json:"oldest_ready,omitempty"`
}

// GetStats counts jobs per status and finds the oldest ready pending job.
func GetStats(ctx context.Context, client *ent.Client) (*Stats, error) {
	s := &Stats{}
	counts := []struct {
		status queuejob.Status
		dst    *int
	}{
		{queuejob.StatusPending, &s.Pending},
		{queuejob.StatusProcessing, &s.Processing},
		{queuejob.StatusCompleted, &s.Completed},
		{queuejob.StatusFailed, &s.Failed},
		{queuejob.StatusDeadLetter, &s.DeadLetter},
	}
	for _, c := range counts {
		n, err := client.QueueJob.Query().
			Where(queuejob.StatusEQ(c.status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s jobs: %w", c.status, err)
		}
		*c.dst = n
	}

	oldest, err := client.QueueJob.Query().
		Where(queuejob.StatusEQ(queuejob.StatusPending)).
		Order(ent.Asc(queuejob.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find oldest pending job: %w", err)
	}
	if oldest != nil {
		s.OldestReady = &oldest.CreatedAt
	}
	return s, nil
}

// PruneTerminal deletes old terminal jobs. Failed and dead-letter rows go
// once they are older than failedBefore. Completed rows are the enqueue
// decider's memory, so they are kept until completedBefore, which callers
// should place beyond the historical sync window.
func PruneTerminal(ctx context.Context, client *ent.Client, failedBefore, completedBefore time.Time) (int, error) {
	nFailed, err := client.QueueJob.Delete().
		Where(
			queuejob.StatusIn(queuejob.StatusFailed, queuejob.StatusDeadLetter),
			queuejob.FailedAtNotNil(),
			queuejob.FailedAtLT(failedBefore),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune failed jobs: %w", err)
	}

	nCompleted, err := client.QueueJob.Delete().
		Where(
			queuejob.StatusEQ(queuejob.StatusCompleted),
			queuejob.CompletedAtNotNil(),
			queuejob.CompletedAtLT(completedBefore),
		).
		Exec(ctx)
	if err != nil {
		return nFailed, fmt.Errorf("failed to prune completed jobs: %w", err)
	}
	return nFailed + nCompleted, nil
}

// ReclaimStartupJobs returns to pending any jobs this pod was processing when
// it previously crashed. Called once during startup, before workers begin.
func ReclaimStartupJobs(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.QueueJob.Update().
		Where(
			queuejob.StatusEQ(queuejob.StatusProcessing),
			queuejob.WorkerIDHasPrefix(podID),
		).
		SetStatus(queuejob.StatusPending).
		ClearWorkerID().
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reclaim startup jobs: %w", err)
	}
	if n > 0 {
		slog.Warn("Reclaimed jobs from previous run", "pod_id", podID, "count", n)
	}
	return nil
}
