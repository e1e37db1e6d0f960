package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// batchBackoffSchedule applies to 429s on batch submission; the batch tier
// refills slower than the direct tier.
var batchBackoffSchedule = []time.Duration{60 * time.Second, 120 * time.Second, 240 * time.Second}

const (
	batchPollInterval = 15 * time.Second
	batchCacheTTL     = time.Hour
	// Rough chars-per-token ratio for deciding whether shared context is
	// big enough to be worth a provider-side cache.
	charsPerToken = 4
)

// ChunkResult carries one chunk's summaries, keyed by ItemRequest.Key.
// A chunk-level Err means the whole chunk failed; per-item misses are simply
// absent from Summaries.
type ChunkResult struct {
	Summaries map[string]*ItemSummary
	Err       error
}

// SummarizeItemsBatch processes items through the half-price batch tier:
// shared meeting context goes into a provider context cache when large
// enough, items are partitioned into chunks, and each chunk's results are
// yielded as soon as they arrive so the caller can persist incrementally.
// The returned channel closes after the last chunk.
func (o *Orchestrator) SummarizeItemsBatch(ctx context.Context, meetingContext string, items []ItemRequest) <-chan ChunkResult {
	out := make(chan ChunkResult)

	go func() {
		defer close(out)

		model := o.batchModel(items)

		cacheName := o.maybeCreateCache(ctx, model, meetingContext)
		if cacheName != "" {
			// Guaranteed release: the cache is destroyed even when ctx is
			// already cancelled, so a background context is used.
			defer func() {
				cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := o.provider.DeleteCache(cleanupCtx, cacheName); err != nil {
					slog.Warn("Failed to delete context cache", "cache", cacheName, "error", err)
				}
			}()
		}

		chunkSize := o.cfg.BatchChunkSize
		if chunkSize < 1 {
			chunkSize = 1
		}

		for start := 0; start < len(items); start += chunkSize {
			end := start + chunkSize
			if end > len(items) {
				end = len(items)
			}
			chunk := items[start:end]

			result := o.processChunk(ctx, model, cacheName, chunk)
			select {
			case out <- result:
			case <-ctx.Done():
				return
			}

			// Quota refill pause between chunks, skipped after the last one.
			if end < len(items) {
				if err := o.sleep(ctx, o.cfg.BatchChunkDelay); err != nil {
					return
				}
			}
		}
	}()

	return out
}

// batchModel picks one model for the whole batch: the pro class if any item
// needs it, otherwise the same selection a single item would get.
func (o *Orchestrator) batchModel(items []ItemRequest) string {
	maxPages, maxChars := 0, 0
	for _, it := range items {
		if it.PageCount > maxPages {
			maxPages = it.PageCount
		}
		if len(it.Text) > maxChars {
			maxChars = len(it.Text)
		}
	}
	return o.selectItemModel(maxPages, maxChars)
}

// maybeCreateCache uploads shared context when it is big enough to cache.
// Failures degrade to uncached requests.
func (o *Orchestrator) maybeCreateCache(ctx context.Context, model, meetingContext string) string {
	if meetingContext == "" || len(meetingContext)/charsPerToken < o.cfg.CacheMinTokens {
		return ""
	}
	name, err := o.provider.CreateCache(ctx, model, meetingContext, batchCacheTTL)
	if err != nil {
		slog.Warn("Context cache creation failed, proceeding uncached", "error", err)
		return ""
	}
	slog.Debug("Created context cache", "cache", name, "context_chars", len(meetingContext))
	return name
}

// processChunk submits one chunk and polls it to completion.
func (o *Orchestrator) processChunk(ctx context.Context, model, cacheName string, chunk []ItemRequest) ChunkResult {
	requests := make([]BatchRequest, 0, len(chunk))
	for _, it := range chunk {
		requests = append(requests, BatchRequest{
			Key:    it.Key,
			Model:  model,
			Prompt: buildItemPrompt(it.Title, it.Text),
			Config: GenerateConfig{
				ResponseSchema: itemResponseSchema,
				ThinkingBudget: thinkingBudget(it.PageCount, len(it.Text)),
				CachedContent:  cacheName,
			},
		})
	}

	name, err := o.createBatchWithRetry(ctx, requests)
	if err != nil {
		return ChunkResult{Err: err}
	}

	started := time.Now()
	for {
		status, err := o.PollBatchOnce(ctx, name)
		if err != nil {
			return ChunkResult{Err: err}
		}
		switch status.State {
		case BatchSucceeded:
			return o.collectChunk(model, chunk, status, time.Since(started))
		case BatchFailed:
			o.sink.RecordLLMCall(model, "batch_item", time.Since(started), 0, 0, 0, false)
			return ChunkResult{Err: fmt.Errorf("%w: batch %s failed: %s", ErrLLM, name, status.Error)}
		}
		if err := o.sleep(ctx, batchPollInterval); err != nil {
			return ChunkResult{Err: fmt.Errorf("%w: cancelled while polling batch: %v", ErrLLM, err)}
		}
	}
}

// PollBatchOnce fetches batch status once. Exposed for the status CLI.
func (o *Orchestrator) PollBatchOnce(ctx context.Context, name string) (*BatchStatus, error) {
	return o.provider.PollBatch(ctx, name)
}

// createBatchWithRetry submits a batch under the 60/120/240s backoff schedule.
func (o *Orchestrator) createBatchWithRetry(ctx context.Context, requests []BatchRequest) (string, error) {
	for attempt := 0; ; attempt++ {
		name, err := o.provider.CreateBatch(ctx, requests)
		if err == nil {
			return name, nil
		}
		var rle *RateLimitError
		if !errors.As(err, &rle) {
			return "", err
		}
		if attempt >= len(batchBackoffSchedule) {
			return "", fmt.Errorf("%w: batch submission retries exhausted", ErrLLM)
		}
		delay := batchBackoffSchedule[attempt]
		slog.Info("Batch submission rate limited, backing off", "delay", delay, "attempt", attempt+1)
		if err := o.sleep(ctx, delay); err != nil {
			return "", fmt.Errorf("%w: cancelled during batch backoff: %v", ErrLLM, err)
		}
	}
}

// collectChunk parses per-item responses and records cost at the batch tier.
func (o *Orchestrator) collectChunk(model string, chunk []ItemRequest, status *BatchStatus, duration time.Duration) ChunkResult {
	summaries := make(map[string]*ItemSummary, len(chunk))
	for _, it := range chunk {
		resp, ok := status.Responses[it.Key]
		if !ok {
			continue
		}
		summary, err := o.parseItemResponse(resp)
		if err != nil {
			slog.Warn("Batch item response unusable", "key", it.Key, "error", err)
			o.sink.RecordLLMCall(model, "batch_item", duration, resp.InputTokens, resp.OutputTokens, 0, false)
			continue
		}
		summary.Model = model
		summaries[it.Key] = summary

		cost := callCost(model, resp.InputTokens, resp.OutputTokens, true)
		o.sink.RecordLLMCall(model, "batch_item", duration, resp.InputTokens, resp.OutputTokens, cost, true)
	}
	return ChunkResult{Summaries: summaries}
}
