// Package fetcher runs the per-city sync: it invokes the vendor adapter under
// the politeness rate limit, validates and persists the normalized records,
// and enqueues processing jobs for eligible meetings.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/adapters"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/metrics"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
)

// Fetcher syncs cities against their vendor platforms.
type Fetcher struct {
	client   *ent.Client
	registry *adapters.Registry
	limiter  *adapters.RateLimiter
	svcs     *services.Services
	decider  *EnqueueDecider
	cfg      *config.Config
	sink     metrics.Sink
}

// New wires a Fetcher over the shared client and repositories.
func New(client *ent.Client, registry *adapters.Registry, limiter *adapters.RateLimiter, svcs *services.Services, cfg *config.Config, sink metrics.Sink) *Fetcher {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Fetcher{
		client:   client,
		registry: registry,
		limiter:  limiter,
		svcs:     svcs,
		decider:  NewEnqueueDecider(client, svcs.Meeting, cfg),
		cfg:      cfg,
		sink:     sink,
	}
}

// SyncStats summarizes one city sync.
type SyncStats struct {
	Meetings  int
	Items     int
	Matters   int
	Enqueued  int
	Skipped   int // invalid records dropped
	VotesNew  int
	ElapsedMs int64
}

// SyncCity runs one full sync for a city. Adapter failure fails the whole
// city; a single invalid meeting record is logged and skipped.
func (f *Fetcher) SyncCity(ctx context.Context, cityCfg config.CityConfig) (*SyncStats, error) {
	started := time.Now()

	if err := f.limiter.Wait(ctx, cityCfg.Vendor); err != nil {
		return nil, fmt.Errorf("rate limit wait interrupted: %w", err)
	}

	adapter, err := f.registry.Get(cityCfg.Vendor)
	if err != nil {
		return nil, err
	}

	daysBack := int(f.cfg.HistoricalCutoff.Hours() / 24)
	daysForward := int(f.cfg.FutureCutoff.Hours() / 24)
	result, err := adapter.FetchMeetings(ctx, cityCfg, daysBack, daysForward)
	if err == nil && !result.Success {
		err = fmt.Errorf("%w: %s", adapters.ErrVendorRequest, result.Error)
	}
	if err != nil {
		f.recordSyncResult(cityCfg.Banana, false)
		f.sink.RecordSync(cityCfg.Vendor, cityCfg.Banana, false, time.Since(started))
		return nil, fmt.Errorf("adapter fetch for %s failed: %w", cityCfg.Banana, err)
	}

	stats := &SyncStats{}
	for _, rec := range result.Meetings {
		if err := models.ValidateMeeting(rec); err != nil {
			slog.Warn("Dropping invalid meeting record",
				"banana", cityCfg.Banana, "vendor_id", rec.VendorID, "error", err)
			stats.Skipped++
			continue
		}
		if err := f.syncMeeting(ctx, cityCfg, rec, stats); err != nil {
			f.recordSyncResult(cityCfg.Banana, false)
			f.sink.RecordSync(cityCfg.Vendor, cityCfg.Banana, false, time.Since(started))
			return nil, err
		}
	}

	f.recordSyncResult(cityCfg.Banana, true)
	stats.ElapsedMs = time.Since(started).Milliseconds()
	f.sink.RecordSync(cityCfg.Vendor, cityCfg.Banana, true, time.Since(started))
	slog.Info("City sync complete",
		"banana", cityCfg.Banana,
		"meetings", stats.Meetings,
		"items", stats.Items,
		"matters", stats.Matters,
		"enqueued", stats.Enqueued,
		"elapsed_ms", stats.ElapsedMs)
	return stats, nil
}

// syncMeeting persists one meeting and everything hanging off it.
func (f *Fetcher) syncMeeting(ctx context.Context, cityCfg config.CityConfig, rec models.MeetingRecord, stats *SyncStats) error {
	meeting, err := f.svcs.Meeting.Upsert(ctx, cityCfg.Banana, rec)
	if err != nil {
		return fmt.Errorf("upsert meeting %s: %w", rec.VendorID, err)
	}
	stats.Meetings++

	if rec.VendorBody != "" {
		committee, err := f.svcs.Committee.Ensure(ctx, cityCfg.Banana, rec.VendorBody, rec.VendorBodyID)
		if err != nil {
			return fmt.Errorf("ensure committee %q: %w", rec.VendorBody, err)
		}
		if err := f.svcs.Meeting.SetCommittee(ctx, meeting.ID, committee.ID); err != nil {
			return err
		}
	}

	items, err := f.svcs.Item.UpsertForMeeting(ctx, meeting.ID, rec.Items)
	if err != nil {
		return fmt.Errorf("upsert items for %s: %w", meeting.ID, err)
	}
	stats.Items += len(items)

	// Matter upserts stay sequential within the meeting so appearance counts
	// never race.
	for i, item := range items {
		itemRec := rec.Items[i]
		if models.IsProcedural(itemRec.Title) {
			continue
		}

		matter, created, err := f.svcs.Matter.UpsertAppearance(ctx, cityCfg.Banana, meeting.ID, item, itemRec, meeting.Date)
		if err != nil {
			return fmt.Errorf("upsert matter for item %s: %w", item.ID, err)
		}
		if err := f.svcs.Item.LinkMatter(ctx, item.ID, matter.ID); err != nil {
			return err
		}
		stats.Matters++

		if created && len(itemRec.Sponsors) > 0 {
			if _, err := f.svcs.Council.RecordSponsorships(ctx, cityCfg.Banana, itemRec.Sponsors); err != nil {
				return err
			}
		}
		if len(itemRec.Votes) > 0 {
			n, err := f.svcs.Vote.RecordVotes(ctx, cityCfg.Banana, matter.ID, meeting.ID, meeting.Date, itemRec.Votes)
			if err != nil {
				var ve *services.ValidationError
				if errors.As(err, &ve) {
					slog.Warn("Dropping malformed roll call", "item", item.ID, "error", err)
				} else {
					return err
				}
			}
			stats.VotesNew += n
		}
	}

	return f.maybeEnqueue(ctx, cityCfg.Banana, meeting, stats)
}

// maybeEnqueue consults the decider and enqueues a processing job.
func (f *Fetcher) maybeEnqueue(ctx context.Context, banana string, meeting *ent.Meeting, stats *SyncStats) error {
	decision, err := f.decider.Decide(ctx, meeting)
	if err != nil {
		return fmt.Errorf("enqueue decision for %s: %w", meeting.ID, err)
	}
	if !decision.Enqueue {
		slog.Debug("Not enqueuing meeting", "meeting", meeting.ID, "reason", decision.Reason)
		return nil
	}

	_, err = queue.Enqueue(ctx, f.client, queue.EnqueueInput{
		SourceURL: SourceURL(meeting),
		MeetingID: meeting.ID,
		Banana:    banana,
		JobType:   queue.JobTypeProcessMeeting,
		Priority:  decision.Priority,
		Payload: map[string]interface{}{
			"meeting_id": meeting.ID,
			"banana":     banana,
		},
	})
	if errors.Is(err, queue.ErrDuplicateJob) {
		return nil // a pending or running job already covers this URL
	}
	if err != nil {
		return fmt.Errorf("enqueue meeting %s: %w", meeting.ID, err)
	}
	stats.Enqueued++
	return nil
}

func (f *Fetcher) recordSyncResult(banana string, ok bool) {
	// Outcome bookkeeping runs on a fresh context: the sync ctx may already
	// be cancelled when the failure is being recorded.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.svcs.City.RecordSyncResult(ctx, banana, ok); err != nil {
		slog.Warn("Failed to record sync result", "banana", banana, "error", err)
	}
}
