// Package llm contains the LLM provider client and the orchestration layer:
// model selection, reactive rate-limit handling, truncation salvage, and
// batch chunking with context caching.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for LLM operations.
var (
	// ErrLLM is the terminal orchestrator error: the provider could not
	// produce a usable response within the retry budget.
	ErrLLM = errors.New("llm call failed")

	// ErrContentFiltered indicates the provider refused the content.
	ErrContentFiltered = errors.New("content filtered by provider")
)

// RateLimitError is a 429 from the provider. RetryDelay carries the
// provider's own hint when the error body included one.
type RateLimitError struct {
	RetryDelay time.Duration
	HasDelay   bool
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.HasDelay {
		return fmt.Sprintf("rate limited, provider asks for %v", e.RetryDelay)
	}
	return "rate limited, no retry hint"
}

// FinishReason is why the model stopped generating.
type FinishReason string

// Finish reasons surfaced by the provider.
const (
	FinishStop      FinishReason = "STOP"
	FinishMaxTokens FinishReason = "MAX_TOKENS"
	FinishSafety    FinishReason = "SAFETY"
	FinishOther     FinishReason = "OTHER"
)

// GenerateConfig tunes a single generation call.
type GenerateConfig struct {
	// ResponseSchema, when set, asks for schema-constrained JSON output.
	ResponseSchema map[string]interface{}
	// MaxOutputTokens caps the response length (0 = provider default).
	MaxOutputTokens int
	// ThinkingBudget caps extended reasoning tokens. nil = model default,
	// 0 = disabled, -1 = unbounded.
	ThinkingBudget *int
	// CachedContent names a context cache to prepend, if any.
	CachedContent string
	Temperature   float64
}

// GenerateResponse is one model response plus its token accounting.
type GenerateResponse struct {
	Text         string
	FinishReason FinishReason
	InputTokens  int
	OutputTokens int
}

// BatchRequest is one entry of a batch submission.
type BatchRequest struct {
	Key    string // caller correlation key
	Model  string
	Prompt string
	Config GenerateConfig
}

// BatchState is the lifecycle of a submitted batch job.
type BatchState string

// Batch states.
const (
	BatchPending   BatchState = "pending"
	BatchRunning   BatchState = "running"
	BatchSucceeded BatchState = "succeeded"
	BatchFailed    BatchState = "failed"
)

// BatchStatus is a poll result. Responses is keyed by BatchRequest.Key and
// only populated once State is terminal.
type BatchStatus struct {
	Name      string
	State     BatchState
	Responses map[string]*GenerateResponse
	Error     string
}

// Provider abstracts the remote LLM service: direct generation, the
// half-price batch tier, and context caches.
type Provider interface {
	GenerateContent(ctx context.Context, model, prompt string, cfg GenerateConfig) (*GenerateResponse, error)
	CreateBatch(ctx context.Context, requests []BatchRequest) (string, error)
	PollBatch(ctx context.Context, name string) (*BatchStatus, error)
	CreateCache(ctx context.Context, model, contents string, ttl time.Duration) (string, error)
	DeleteCache(ctx context.Context, name string) error
}
