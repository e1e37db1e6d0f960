// Package processor executes queued meeting jobs: it extracts attachment
// text, drives the LLM orchestrator, and writes summaries, topics, and
// canonical matter updates back through the repositories.
package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/extract"
	"github.com/Engagic/engagic-sub004/pkg/llm"
	"github.com/Engagic/engagic-sub004/pkg/models"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
)

// Summarizer is the slice of the LLM orchestrator the processor drives.
type Summarizer interface {
	SummarizeItem(ctx context.Context, req llm.ItemRequest) (*llm.ItemSummary, error)
	SummarizeItemsBatch(ctx context.Context, meetingContext string, items []llm.ItemRequest) <-chan llm.ChunkResult
	SummarizeMeeting(ctx context.Context, text string, pageCount int) (string, error)
}

// DocumentFetcher downloads attachment and packet bytes.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Processor implements queue.JobExecutor for process_meeting jobs.
type Processor struct {
	svcs       *services.Services
	downloader DocumentFetcher
	extractor  extract.Extractor
	llm        Summarizer
	cfg        *config.Config
}

// New wires a Processor.
func New(svcs *services.Services, downloader DocumentFetcher, extractor extract.Extractor, summarizer Summarizer, cfg *config.Config) *Processor {
	return &Processor{
		svcs:       svcs,
		downloader: downloader,
		extractor:  extractor,
		llm:        summarizer,
		cfg:        cfg,
	}
}

// Execute processes one claimed job. Meetings with items take the item-level
// path; meetings with only a packet take the monolithic path.
func (p *Processor) Execute(ctx context.Context, job *ent.QueueJob) *queue.ExecutionResult {
	if job.JobType != queue.JobTypeProcessMeeting {
		return &queue.ExecutionResult{
			Err:       fmt.Errorf("unknown job type %q", job.JobType),
			Permanent: true,
		}
	}

	meetingID := job.MeetingID
	if meetingID == "" {
		if id, ok := job.Payload["meeting_id"].(string); ok {
			meetingID = id
		}
	}
	if meetingID == "" {
		return &queue.ExecutionResult{Err: errors.New("job carries no meeting id"), Permanent: true}
	}

	meeting, err := p.svcs.Meeting.GetDetail(ctx, meetingID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &queue.ExecutionResult{Err: fmt.Errorf("meeting %s no longer exists", meetingID), Permanent: true}
		}
		return &queue.ExecutionResult{Err: err}
	}

	if err := p.svcs.Meeting.MarkProcessing(ctx, meetingID); err != nil {
		return &queue.ExecutionResult{Err: err}
	}

	var result *queue.ExecutionResult
	switch {
	case len(meeting.Edges.Items) > 0:
		result = p.processItemLevel(ctx, meeting)
	case meeting.PacketURL != "":
		result = p.processMonolithic(ctx, meeting)
	default:
		result = &queue.ExecutionResult{Err: errors.New("meeting has neither items nor a packet"), Permanent: true}
	}

	if result.Err == nil {
		result.Metadata = map[string]interface{}{
			"attachment_fingerprint": meeting.AttachmentFingerprint,
			"processed_at":           time.Now().Format(time.RFC3339),
		}
	}
	return result
}

// pendingItem is one item that needs LLM work this run.
type pendingItem struct {
	item *ent.AgendaItem
	req  llm.ItemRequest
}

// processItemLevel runs the matters-first path: cache hits and skips first,
// then one batch of LLM requests for whatever remains, persisting chunk by
// chunk.
func (p *Processor) processItemLevel(ctx context.Context, meeting *ent.Meeting) *queue.ExecutionResult {
	started := time.Now()
	log := slog.With("meeting", meeting.ID)

	topicsUnion := make(map[string]bool)
	var pending []pendingItem
	var cached, skipped, summarized, failed int

	for _, item := range meeting.Edges.Items {
		if item.Summary != nil {
			addTopics(topicsUnion, item.Topics)
			continue
		}
		if item.ProcessingMethod == "no_attachments" {
			continue
		}
		if models.IsProcedural(item.Title) {
			continue
		}

		if topics, hit := p.tryMatterCache(ctx, item); hit {
			cached++
			addTopics(topicsUnion, topics)
			continue
		}

		if len(item.Attachments) == 0 {
			if err := p.svcs.Item.MarkSkipped(ctx, item.ID, "no_attachments"); err != nil {
				return &queue.ExecutionResult{Err: err}
			}
			skipped++
			continue
		}

		text, pages, err := p.extractItemText(ctx, item)
		if err != nil {
			log.Warn("Item extraction failed", "item", item.ID, "error", err)
			if dbErr := p.svcs.Item.SetExtractionError(ctx, item.ID, err.Error()); dbErr != nil {
				return &queue.ExecutionResult{Err: dbErr}
			}
			failed++
			continue
		}

		pending = append(pending, pendingItem{
			item: item,
			req: llm.ItemRequest{
				Key:       item.ID,
				Title:     item.Title,
				Text:      text,
				PageCount: pages,
			},
		})
	}

	n, f, err := p.summarizePending(ctx, meeting, pending, topicsUnion)
	if err != nil {
		return &queue.ExecutionResult{Err: err}
	}
	summarized += n
	failed += f

	attempted := cached + summarized + failed
	ok := failed == 0 || cached+summarized > 0
	method := fmt.Sprintf("item_level_%d_items", len(meeting.Edges.Items))

	if err := p.svcs.Meeting.RecordProcessingOutcome(ctx, meeting.ID, ok, method, "", setToSlice(topicsUnion), time.Since(started)); err != nil {
		return &queue.ExecutionResult{Err: err}
	}

	log.Info("Item-level processing complete",
		"summarized", summarized, "cache_hits", cached, "skipped", skipped, "failed", failed)

	if !ok && attempted > 0 {
		return &queue.ExecutionResult{Err: fmt.Errorf("all %d processable items failed", failed)}
	}
	return &queue.ExecutionResult{}
}

// tryMatterCache copies the canonical summary onto the item when the linked
// matter was summarized from the same attachment set.
func (p *Processor) tryMatterCache(ctx context.Context, item *ent.AgendaItem) ([]string, bool) {
	if item.MatterID == nil || item.AttachmentHash == "" {
		return nil, false
	}
	matter, err := p.svcs.Matter.Get(ctx, *item.MatterID)
	if err != nil || matter.CanonicalSummary == nil || matter.AttachmentHash != item.AttachmentHash {
		return nil, false
	}
	err = p.svcs.Item.SetSummary(ctx, item.ID, *matter.CanonicalSummary, matter.CanonicalTopics, "matter_cache_hit")
	if err != nil {
		slog.Warn("Failed to copy canonical summary", "item", item.ID, "error", err)
		return nil, false
	}
	return matter.CanonicalTopics, true
}

// summarizePending sends the assembled requests through the orchestrator:
// the batch tier for bulk, a direct call for a single stray item.
func (p *Processor) summarizePending(ctx context.Context, meeting *ent.Meeting, pending []pendingItem, topicsUnion map[string]bool) (summarized, failed int, err error) {
	if len(pending) == 0 {
		return 0, 0, nil
	}

	byKey := make(map[string]pendingItem, len(pending))
	for _, pi := range pending {
		byKey[pi.req.Key] = pi
	}

	if len(pending) == 1 {
		pi := pending[0]
		summary, llmErr := p.llm.SummarizeItem(ctx, pi.req)
		if llmErr != nil {
			slog.Warn("Item summarization failed", "item", pi.item.ID, "error", llmErr)
			return 0, 1, nil
		}
		if err := p.persistSummary(ctx, pi.item, summary, topicsUnion); err != nil {
			return 0, 0, err
		}
		return 1, 0, nil
	}

	requests := make([]llm.ItemRequest, 0, len(pending))
	for _, pi := range pending {
		requests = append(requests, pi.req)
	}

	for chunk := range p.llm.SummarizeItemsBatch(ctx, meetingContext(meeting), requests) {
		if chunk.Err != nil {
			slog.Warn("Batch chunk failed", "meeting", meeting.ID, "error", chunk.Err)
			continue
		}
		for key, summary := range chunk.Summaries {
			pi, ok := byKey[key]
			if !ok {
				continue
			}
			if err := p.persistSummary(ctx, pi.item, summary, topicsUnion); err != nil {
				return summarized, failed, err
			}
			summarized++
			delete(byKey, key)
		}
	}

	// Whatever never came back counts as failed; those items retry on the
	// next sync since their attachment hashes are unchanged.
	failed = len(byKey)
	return summarized, failed, nil
}

// persistSummary writes one item summary and promotes it to the linked
// matter's canonical summary.
func (p *Processor) persistSummary(ctx context.Context, item *ent.AgendaItem, summary *llm.ItemSummary, topicsUnion map[string]bool) error {
	text := summary.Summary
	if summary.CitizenImpact != "" {
		text += "\n\n### Citizen impact\n\n" + summary.CitizenImpact
	}

	if err := p.svcs.Item.SetSummary(ctx, item.ID, text, summary.Topics, "llm"); err != nil {
		return err
	}
	addTopics(topicsUnion, summary.Topics)

	if item.MatterID != nil {
		if err := p.svcs.Matter.UpdateCanonical(ctx, *item.MatterID, text, summary.Topics, item.AttachmentHash); err != nil {
			return err
		}
	}
	return nil
}

// extractItemText downloads and extracts every PDF attachment of one item.
// Partial success is success; all attachments failing is an extraction error.
func (p *Processor) extractItemText(ctx context.Context, item *ent.AgendaItem) (string, int, error) {
	var text string
	var pages int
	var lastErr error

	for _, att := range item.Attachments {
		if att.Type != models.AttachmentPDF && att.Type != models.AttachmentUnknown {
			continue
		}
		data, err := p.downloader.Fetch(ctx, att.URL)
		if err != nil {
			lastErr = err
			continue
		}
		result, err := p.extractor.ExtractFromBytes(ctx, data)
		if err != nil {
			lastErr = err
			continue
		}
		if !result.Success {
			lastErr = errors.New(result.Error)
			continue
		}
		if text != "" {
			text += "\n\n"
		}
		text += result.Text
		pages += result.PageCount
	}

	if text == "" {
		if lastErr == nil {
			lastErr = extract.ErrNoText
		}
		return "", 0, fmt.Errorf("no attachment yielded text: %w", lastErr)
	}
	return text, pages, nil
}

// processMonolithic extracts the whole packet and produces one meeting-level
// summary. The processing cache short-circuits packets already handled by an
// earlier sync.
func (p *Processor) processMonolithic(ctx context.Context, meeting *ent.Meeting) *queue.ExecutionResult {
	started := time.Now()

	if meeting.Summary != nil {
		if _, err := p.svcs.Cache.Lookup(ctx, meeting.PacketURL); err == nil {
			slog.Info("Packet already processed, skipping", "meeting", meeting.ID)
			if err := p.svcs.Meeting.RecordProcessingOutcome(ctx, meeting.ID, true, "monolithic", "", nil, time.Since(started)); err != nil {
				return &queue.ExecutionResult{Err: err}
			}
			return &queue.ExecutionResult{}
		}
	}

	data, err := p.downloader.Fetch(ctx, meeting.PacketURL)
	if err != nil {
		p.recordMeetingFailure(ctx, meeting.ID, started)
		return &queue.ExecutionResult{Err: fmt.Errorf("packet download failed: %w", err)}
	}

	result, err := p.extractor.ExtractFromBytes(ctx, data)
	if err != nil {
		p.recordMeetingFailure(ctx, meeting.ID, started)
		return &queue.ExecutionResult{Err: fmt.Errorf("packet extraction failed: %w", err)}
	}
	if !result.Success {
		p.recordMeetingFailure(ctx, meeting.ID, started)
		return &queue.ExecutionResult{Err: fmt.Errorf("packet extraction failed: %s", result.Error)}
	}

	summary, err := p.llm.SummarizeMeeting(ctx, result.Text, result.PageCount)
	if err != nil {
		p.recordMeetingFailure(ctx, meeting.ID, started)
		return &queue.ExecutionResult{Err: err}
	}

	elapsed := time.Since(started)
	if err := p.svcs.Meeting.RecordProcessingOutcome(ctx, meeting.ID, true, "monolithic", summary, nil, elapsed); err != nil {
		return &queue.ExecutionResult{Err: err}
	}

	contentHash := sha256.Sum256(data)
	if err := p.svcs.Cache.Store(ctx, meeting.PacketURL, hex.EncodeToString(contentHash[:]), "monolithic", elapsed); err != nil {
		slog.Warn("Failed to store processing cache entry", "meeting", meeting.ID, "error", err)
	}
	return &queue.ExecutionResult{}
}

func (p *Processor) recordMeetingFailure(ctx context.Context, meetingID string, started time.Time) {
	if err := p.svcs.Meeting.RecordProcessingOutcome(ctx, meetingID, false, "", "", nil, time.Since(started)); err != nil {
		slog.Warn("Failed to record meeting failure", "meeting", meetingID, "error", err)
	}
}

func addTopics(set map[string]bool, topics []string) {
	for _, t := range topics {
		set[t] = true
	}
}

func setToSlice(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	return out
}

// meetingContext is the shared context cached across a meeting's batch
// chunks: the meeting header plus its agenda outline.
func meetingContext(meeting *ent.Meeting) string {
	ctx := "Meeting: " + meeting.Title
	if meeting.Date != nil {
		ctx += "\nDate: " + meeting.Date.Format("2006-01-02")
	}
	ctx += "\nAgenda:\n"
	for _, item := range meeting.Edges.Items {
		ctx += fmt.Sprintf("%d. %s\n", item.Sequence, item.Title)
	}
	return ctx
}
