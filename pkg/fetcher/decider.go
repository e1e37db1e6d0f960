package fetcher

import (
	"context"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
)

// EnqueueDecider decides whether a freshly synced meeting needs a processing
// job, and at what priority.
type EnqueueDecider struct {
	client   *ent.Client
	meetings *services.MeetingService
	cfg      *config.Config
	now      func() time.Time
}

// NewEnqueueDecider creates a decider.
func NewEnqueueDecider(client *ent.Client, meetings *services.MeetingService, cfg *config.Config) *EnqueueDecider {
	return &EnqueueDecider{client: client, meetings: meetings, cfg: cfg, now: time.Now}
}

// Decision is the decider's verdict with the reason it was reached.
type Decision struct {
	Enqueue  bool
	Priority int
	Reason   string
}

// Decide applies the eligibility rules: the meeting must have processable
// content, a known date inside the sync window, and either no completed job
// yet, items still missing summaries, or a changed attachment fingerprint.
func (d *EnqueueDecider) Decide(ctx context.Context, m *ent.Meeting) (Decision, error) {
	hasItems, err := d.hasItems(ctx, m)
	if err != nil {
		return Decision{}, err
	}
	if m.PacketURL == "" && !hasItems {
		return Decision{Reason: "no processable content"}, nil
	}

	if m.Date == nil {
		return Decision{Reason: "date TBD"}, nil
	}
	now := d.now()
	if m.Date.Before(now.Add(-d.cfg.HistoricalCutoff)) {
		return Decision{Reason: "older than historical cutoff"}, nil
	}
	if m.Date.After(now.Add(d.cfg.FutureCutoff)) {
		return Decision{Reason: "beyond future cutoff"}, nil
	}

	priority := Priority(now, *m.Date)

	prior, err := queue.FindBySourceURL(ctx, d.client, SourceURL(m))
	if err != nil {
		return Decision{}, err
	}
	if prior == nil || prior.Status != queuejob.StatusCompleted {
		return Decision{Enqueue: true, Priority: priority, Reason: "no completed job"}, nil
	}

	unsummarized, err := d.meetings.HasUnsummarizedItems(ctx, m.ID)
	if err != nil {
		return Decision{}, err
	}
	if unsummarized {
		return Decision{Enqueue: true, Priority: priority, Reason: "items missing summaries"}, nil
	}

	if fp, ok := prior.ProcessingMetadata["attachment_fingerprint"].(string); ok && fp != m.AttachmentFingerprint {
		return Decision{Enqueue: true, Priority: priority, Reason: "attachment fingerprint changed"}, nil
	}

	return Decision{Reason: "already processed"}, nil
}

func (d *EnqueueDecider) hasItems(ctx context.Context, m *ent.Meeting) (bool, error) {
	items, err := d.meetings.GetDetail(ctx, m.ID)
	if err != nil {
		return false, err
	}
	return len(items.Edges.Items) > 0, nil
}

// SourceURL is the job idempotency key for a meeting: the packet when one
// exists, else the agenda.
func SourceURL(m *ent.Meeting) string {
	if m.PacketURL != "" {
		return m.PacketURL
	}
	return m.AgendaURL
}

// Priority ranks jobs so upcoming meetings always outrank past backfill. A
// meeting N days in the future scores 100+N, today scores 100, and past
// meetings decay one point per day, leaving the oldest meetings inside the
// historical cutoff a small positive priority.
func Priority(now, date time.Time) int {
	days := int(date.Sub(now).Hours() / 24)
	p := 100 + days
	if p < 0 {
		return 0
	}
	return p
}
