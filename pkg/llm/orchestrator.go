package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/metrics"
	"github.com/Engagic/engagic-sub004/pkg/topics"
)

// Model selection thresholds.
const (
	flashLiteMaxPages = 50
	flashLiteMaxChars = 200_000
	proMinPages       = 100

	simpleItemMaxPages = 10
	simpleItemMaxChars = 30_000
)

// fallbackRetrySchedule applies when a 429 carries no retryDelay hint.
var fallbackRetrySchedule = []time.Duration{30 * time.Second, 60 * time.Second, 90 * time.Second}

// ItemRequest is one agenda item to summarize.
type ItemRequest struct {
	Key       string // caller correlation key
	Title     string
	Text      string // concatenated extracted attachment text
	PageCount int
}

// ItemSummary is the structured output persisted onto items and matters.
type ItemSummary struct {
	Summary       string
	CitizenImpact string
	Topics        []string
	Confidence    string
	Truncated     bool
	Model         string
}

// Orchestrator owns model/prompt selection and the reactive retry policy.
type Orchestrator struct {
	provider   Provider
	cfg        config.LLMConfig
	normalizer *topics.Normalizer
	sink       metrics.Sink
	sleep      func(ctx context.Context, d time.Duration) error // test seam
}

// NewOrchestrator builds an orchestrator. sink may be nil (metrics disabled).
func NewOrchestrator(provider Provider, cfg config.LLMConfig, normalizer *topics.Normalizer, sink metrics.Sink) *Orchestrator {
	if sink == nil {
		sink = metrics.Noop{}
	}
	return &Orchestrator{
		provider:   provider,
		cfg:        cfg,
		normalizer: normalizer,
		sink:       sink,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// selectItemModel picks the model class for one item.
func (o *Orchestrator) selectItemModel(pageCount, textLen int) string {
	if pageCount >= proMinPages {
		return o.cfg.ProModel
	}
	if o.cfg.UseFlashLite && pageCount <= flashLiteMaxPages && textLen < flashLiteMaxChars {
		return o.cfg.FlashLiteModel
	}
	return o.cfg.FlashModel
}

// thinkingBudget tiers extended reasoning by item complexity.
func thinkingBudget(pageCount, textLen int) *int {
	if pageCount <= simpleItemMaxPages && textLen <= simpleItemMaxChars {
		off := 0
		return &off
	}
	if pageCount >= proMinPages {
		unbounded := -1
		return &unbounded
	}
	return nil // model default
}

// itemJSON is the schema-constrained item response.
type itemJSON struct {
	SummaryMarkdown       string   `json:"summary_markdown"`
	CitizenImpactMarkdown string   `json:"citizen_impact_markdown"`
	Topics                []string `json:"topics"`
	Confidence            string   `json:"confidence"`
}

// SummarizeItem summarizes one agenda item with the unified prompt.
// Truncated responses are salvaged when a summary is recoverable.
func (o *Orchestrator) SummarizeItem(ctx context.Context, req ItemRequest) (*ItemSummary, error) {
	model := o.selectItemModel(req.PageCount, len(req.Text))
	prompt := buildItemPrompt(req.Title, req.Text)

	resp, err := o.callWithRetry(ctx, model, prompt, GenerateConfig{
		ResponseSchema: itemResponseSchema,
		ThinkingBudget: thinkingBudget(req.PageCount, len(req.Text)),
	}, "item")
	if err != nil {
		return nil, err
	}

	summary, parseErr := o.parseItemResponse(resp)
	if parseErr != nil {
		return nil, parseErr
	}
	summary.Model = model
	return summary, nil
}

// parseItemResponse validates the structured response, salvaging truncations.
func (o *Orchestrator) parseItemResponse(resp *GenerateResponse) (*ItemSummary, error) {
	var parsed itemJSON
	if err := json.Unmarshal([]byte(resp.Text), &parsed); err == nil && parsed.SummaryMarkdown != "" {
		out := &ItemSummary{
			Summary:       parsed.SummaryMarkdown,
			CitizenImpact: parsed.CitizenImpactMarkdown,
			Topics:        o.normalizeTopics(parsed.Topics),
			Confidence:    parsed.Confidence,
		}
		if resp.FinishReason == FinishMaxTokens {
			out.Summary += TruncationNotice
			out.Truncated = true
			out.Confidence = "low"
		}
		return out, nil
	}

	if resp.FinishReason != FinishMaxTokens {
		return nil, fmt.Errorf("%w: response failed schema validation", ErrLLM)
	}

	salvaged, ok := salvageSummary(resp.Text)
	if !ok {
		return nil, fmt.Errorf("%w: truncated response with no recoverable summary", ErrLLM)
	}
	slog.Warn("Salvaged truncated LLM response", "summary_chars", len(salvaged))
	return &ItemSummary{
		Summary:    salvaged + TruncationNotice,
		Topics:     o.normalizeTopics(nil),
		Confidence: "low",
		Truncated:  true,
	}, nil
}

// normalizeTopics maps raw topics through the canonical taxonomy, falling
// back to ["other"] when nothing survives.
func (o *Orchestrator) normalizeTopics(raw []string) []string {
	out := o.normalizer.Normalize(raw)
	if len(out) == 0 {
		return []string{"other"}
	}
	return out
}

// SummarizeMeeting runs the monolithic path over extracted packet text.
func (o *Orchestrator) SummarizeMeeting(ctx context.Context, text string, pageCount int) (string, error) {
	model := o.cfg.FlashModel
	if pageCount >= proMinPages {
		model = o.cfg.ProModel
	}

	resp, err := o.callWithRetry(ctx, model, buildMeetingPrompt(text, pageCount), GenerateConfig{}, "meeting")
	if err != nil {
		return "", err
	}

	summary := resp.Text
	if resp.FinishReason == FinishMaxTokens {
		summary += TruncationNotice
	}
	return summary, nil
}

// callWithRetry performs one generation call under the reactive rate-limit
// policy: honor the provider's retryDelay (plus a one-second cushion), fall
// back to the 30/60/90s schedule without a hint, and cap total retry time at
// the configured budget. Non-429 errors raise immediately.
func (o *Orchestrator) callWithRetry(ctx context.Context, model, prompt string, genCfg GenerateConfig, promptType string) (*GenerateResponse, error) {
	started := time.Now()
	retries := 0

	for {
		callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
		resp, err := o.provider.GenerateContent(callCtx, model, prompt, genCfg)
		cancel()

		duration := time.Since(started)
		if err == nil {
			cost := callCost(model, resp.InputTokens, resp.OutputTokens, false)
			o.sink.RecordLLMCall(model, promptType, duration, resp.InputTokens, resp.OutputTokens, cost, true)
			return resp, nil
		}

		var rle *RateLimitError
		if !errors.As(err, &rle) {
			o.sink.RecordLLMCall(model, promptType, duration, 0, 0, 0, false)
			return nil, err
		}

		var delay time.Duration
		if rle.HasDelay {
			delay = rle.RetryDelay + time.Second
		} else {
			if retries >= len(fallbackRetrySchedule) {
				o.sink.RecordLLMCall(model, promptType, duration, 0, 0, 0, false)
				return nil, fmt.Errorf("%w: rate limit retries exhausted after %v", ErrLLM, duration)
			}
			delay = fallbackRetrySchedule[retries]
		}

		if time.Since(started)+delay > o.cfg.RetryBudget {
			o.sink.RecordLLMCall(model, promptType, duration, 0, 0, 0, false)
			return nil, fmt.Errorf("%w: rate limit backoff would exceed %v budget", ErrLLM, o.cfg.RetryBudget)
		}

		retries++
		slog.Info("Rate limited, backing off",
			"model", model, "delay", delay, "retry", retries, "provider_hint", rle.HasDelay)
		if err := o.sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("%w: cancelled during rate limit backoff: %v", ErrLLM, err)
		}
	}
}
