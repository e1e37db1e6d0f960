package cleanup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/pkg/cleanup"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/services"
	testdb "github.com/Engagic/engagic-sub004/test/database"
)

func TestRunAllSweeps(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tc := testdb.NewTestClient(t)
	svcs := services.New(tc.Client, tc.DB())
	ctx := context.Background()

	cfg := &config.Config{
		CleanupInterval:  time.Hour,
		CacheRetention:   90 * 24 * time.Hour,
		JobRetention:     30 * 24 * time.Hour,
		HistoricalCutoff: 180 * 24 * time.Hour,
	}

	// Stale cache entry, fresh cache entry.
	require.NoError(t, svcs.Cache.Store(ctx, "https://example.com/old.pdf", "aaa", "monolithic", time.Second))
	require.NoError(t, svcs.Cache.Store(ctx, "https://example.com/new.pdf", "bbb", "monolithic", time.Second))
	_, err := tc.DB().ExecContext(ctx,
		`UPDATE processing_cache SET last_accessed_at = NOW() - INTERVAL '120 days' WHERE packet_url = $1`,
		"https://example.com/old.pdf")
	require.NoError(t, err)

	// Old dead-letter job, recent pending job.
	oldJob := tc.Client.QueueJob.Create().
		SetSourceURL("https://example.com/dead").
		SetJobType("process_meeting").
		SetStatus(queuejob.StatusDeadLetter).
		SetFailedAt(time.Now().Add(-60 * 24 * time.Hour)).
		SaveX(ctx)
	keepJob := tc.Client.QueueJob.Create().
		SetSourceURL("https://example.com/pending").
		SetJobType("process_meeting").
		SaveX(ctx)

	svc := cleanup.NewService(cfg, tc.Client, svcs)
	svc.RunAll(ctx)

	_, err = svcs.Cache.Lookup(ctx, "https://example.com/old.pdf")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svcs.Cache.Lookup(ctx, "https://example.com/new.pdf")
	assert.NoError(t, err)

	exists := tc.Client.QueueJob.Query().Where(queuejob.IDEQ(oldJob.ID)).ExistX(ctx)
	assert.False(t, exists, "old dead-letter job should be pruned")
	exists = tc.Client.QueueJob.Query().Where(queuejob.IDEQ(keepJob.ID)).ExistX(ctx)
	assert.True(t, exists)
}

func TestStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tc := testdb.NewTestClient(t)
	svcs := services.New(tc.Client, tc.DB())

	cfg := &config.Config{
		CleanupInterval:  time.Hour,
		CacheRetention:   90 * 24 * time.Hour,
		JobRetention:     30 * 24 * time.Hour,
		HistoricalCutoff: 180 * 24 * time.Hour,
	}

	svc := cleanup.NewService(cfg, tc.Client, svcs)
	svc.Start(context.Background())
	svc.Stop()
	// Stop is idempotent after the loop has exited.
	svc.Stop()
}
