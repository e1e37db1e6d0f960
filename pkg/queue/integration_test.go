package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/pkg/config"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

// intTestConfig returns a config suitable for queue integration tests.
func intTestConfig() *config.Config {
	return &config.Config{
		LLMConcurrency: 2,
		MaxRetries:     3,
		QueueLeaseTTL:  30 * time.Second,
		ClaimInterval:  100 * time.Millisecond,
		ClaimJitter:    0,
	}
}

// enqueueTestJob adds a pending process_meeting job.
func enqueueTestJob(ctx context.Context, t *testing.T, client *ent.Client, url string, priority int) *ent.QueueJob {
	t.Helper()
	job, err := Enqueue(ctx, client, EnqueueInput{
		SourceURL: url,
		MeetingID: "paloaltoCA_deadbeef",
		Banana:    "paloaltoCA",
		JobType:   JobTypeProcessMeeting,
		Priority:  priority,
	})
	require.NoError(t, err)
	return job
}

func TestEnqueueIsIdempotentBySourceURL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	first := enqueueTestJob(ctx, t, client, "https://example.com/packet.pdf", 100)

	second, err := Enqueue(ctx, client, EnqueueInput{
		SourceURL: "https://example.com/packet.pdf",
		JobType:   JobTypeProcessMeeting,
		Priority:  50,
	})
	require.ErrorIs(t, err, ErrDuplicateJob)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 100, second.Priority, "no-op enqueue keeps the original priority")

	n, err := client.QueueJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEnqueueResurrectsTerminalJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestConfig()

	enqueueTestJob(ctx, t, client, "https://example.com/a.pdf", 100)
	job, err := Claim(ctx, client, "worker-a", cfg.QueueLeaseTTL)
	require.NoError(t, err)
	require.NoError(t, Complete(ctx, client, job, nil))

	resurrected, err := Enqueue(ctx, client, EnqueueInput{
		SourceURL: "https://example.com/a.pdf",
		JobType:   JobTypeProcessMeeting,
		Priority:  77,
	})
	require.NoError(t, err)
	assert.Equal(t, job.ID, resurrected.ID, "same row is reused")
	assert.Equal(t, queuejob.StatusPending, resurrected.Status)
	assert.Equal(t, 77, resurrected.Priority)
	assert.Equal(t, job.RetryCount, resurrected.RetryCount, "retry count survives resurrection")
}

func TestClaimOrdersByPriorityThenFIFO(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestConfig()

	low := enqueueTestJob(ctx, t, client, "https://example.com/low.pdf", 10)
	highFirst := enqueueTestJob(ctx, t, client, "https://example.com/high1.pdf", 90)
	highSecond := enqueueTestJob(ctx, t, client, "https://example.com/high2.pdf", 90)

	var order []int64
	for i := 0; i < 3; i++ {
		job, err := Claim(ctx, client, fmt.Sprintf("worker-%d", i), cfg.QueueLeaseTTL)
		require.NoError(t, err)
		order = append(order, job.ID)
	}
	assert.Equal(t, []int64{highFirst.ID, highSecond.ID, low.ID}, order)

	_, err := Claim(ctx, client, "worker-x", cfg.QueueLeaseTTL)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestFailSchedulesRetryWithBackoff(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestConfig()

	enqueueTestJob(ctx, t, client, "https://example.com/b.pdf", 100)
	job, err := Claim(ctx, client, "worker-a", cfg.QueueLeaseTTL)
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, Fail(ctx, client, job, errors.New("provider exploded"), false, cfg.MaxRetries))

	reloaded, err := client.QueueJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusPending, reloaded.Status)
	assert.Equal(t, 1, reloaded.RetryCount)
	assert.Equal(t, 99, reloaded.Priority, "retry costs one priority point")
	assert.Equal(t, "provider exploded", reloaded.ErrorMessage)
	require.NotNil(t, reloaded.NotBefore)
	assert.WithinDuration(t, before.Add(30*time.Second), *reloaded.NotBefore, 2*time.Second)

	// Backoff schedule in the future means the job is not yet claimable.
	_, err = Claim(ctx, client, "worker-b", cfg.QueueLeaseTTL)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestFailMovesToDeadLetterAfterMaxRetries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	enqueueTestJob(ctx, t, client, "https://example.com/c.pdf", 100)
	job, err := Claim(ctx, client, "worker-a", 30*time.Second)
	require.NoError(t, err)

	require.NoError(t, Fail(ctx, client, job, errors.New("still broken"), false, 1))

	reloaded, err := client.QueueJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusDeadLetter, reloaded.Status)
	assert.NotNil(t, reloaded.FailedAt)
}

func TestPermanentFailureIsTerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	enqueueTestJob(ctx, t, client, "https://example.com/d.pdf", 100)
	job, err := Claim(ctx, client, "worker-a", 30*time.Second)
	require.NoError(t, err)

	require.NoError(t, Fail(ctx, client, job, errors.New("packet URL 404"), true, 3))

	reloaded, err := client.QueueJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusFailed, reloaded.Status)
	assert.Equal(t, 0, reloaded.RetryCount, "permanent failures do not consume retries")
}

func TestLeaseExpiryReclaim(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	enqueueTestJob(ctx, t, client, "https://example.com/e.pdf", 100)

	// Worker A claims, then dies. A very short TTL simulates the lease aging out.
	jobA, err := Claim(ctx, client, "worker-a", 30*time.Second)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Worker B polls with the lease already expired and reclaims the job.
	jobB, err := Claim(ctx, client, "worker-b", time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, jobA.ID, jobB.ID)
	assert.Equal(t, queuejob.StatusProcessing, jobB.Status)
	assert.Equal(t, "worker-b", jobB.WorkerID)

	// Worker A comes back and tries to complete: the lease guard rejects it.
	err = Complete(ctx, client, jobA, nil)
	assert.ErrorIs(t, err, ErrLeaseLost)

	reloaded, err := client.QueueJob.Get(ctx, jobA.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusProcessing, reloaded.Status, "worker B still owns the job")

	// Worker B completes normally.
	require.NoError(t, Complete(ctx, client, jobB, nil))
}

func TestReclaimStartupJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	enqueueTestJob(ctx, t, client, "https://example.com/f.pdf", 100)
	job, err := Claim(ctx, client, "pod-1-worker-0", 30*time.Second)
	require.NoError(t, err)

	// Pod restarts: its in-flight jobs go back to pending.
	require.NoError(t, ReclaimStartupJobs(ctx, client, "pod-1"))

	reloaded, err := client.QueueJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusPending, reloaded.Status)
	assert.Empty(t, reloaded.WorkerID)
	assert.Nil(t, reloaded.StartedAt)
}

func TestGetStats(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	enqueueTestJob(ctx, t, client, "https://example.com/g.pdf", 100)
	enqueueTestJob(ctx, t, client, "https://example.com/h.pdf", 50)
	job, err := Claim(ctx, client, "worker-a", 30*time.Second)
	require.NoError(t, err)
	require.NoError(t, Complete(ctx, client, job, nil))

	stats, err := GetStats(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 0, stats.Processing)
	assert.Equal(t, 1, stats.Completed)
	assert.NotNil(t, stats.OldestReady)
}

// stubExecutor records executed jobs and returns a fixed result.
type stubExecutor struct {
	result *ExecutionResult
	seen   chan int64
}

func (s *stubExecutor) Execute(ctx context.Context, job *ent.QueueJob) *ExecutionResult {
	s.seen <- job.ID
	return s.result
}

func TestWorkerProcessesJobEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	cfg := intTestConfig()

	job := enqueueTestJob(ctx, t, client, "https://example.com/i.pdf", 100)

	exec := &stubExecutor{result: &ExecutionResult{}, seen: make(chan int64, 1)}
	worker := NewWorker("pod-1-worker-0", "pod-1", client, cfg, exec, nil)
	worker.Start(ctx)
	defer worker.Stop()

	select {
	case id := <-exec.seen:
		assert.Equal(t, job.ID, id)
	case <-time.After(5 * time.Second):
		t.Fatal("worker never picked up the job")
	}

	// Completion is asynchronous after Execute returns; poll briefly.
	require.Eventually(t, func() bool {
		reloaded, err := client.QueueJob.Get(ctx, job.ID)
		return err == nil && reloaded.Status == queuejob.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)
}
