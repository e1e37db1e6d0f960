package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/topics"
)

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		FlashModel:      "gemini-2.5-flash",
		FlashLiteModel:  "gemini-2.5-flash-lite",
		ProModel:        "gemini-2.5-pro",
		CallTimeout:     5 * time.Minute,
		RetryBudget:     3 * time.Minute,
		BatchChunkSize:  5,
		BatchChunkDelay: 2 * time.Minute,
		CacheMinTokens:  1024,
	}
}

// fakeProvider scripts provider behavior per call.
type fakeProvider struct {
	generate    func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error)
	batches     [][]BatchRequest
	cacheCalls  []string
	deleteCalls []string
}

func (f *fakeProvider) GenerateContent(_ context.Context, model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
	return f.generate(model, prompt, cfg)
}

func (f *fakeProvider) CreateBatch(_ context.Context, requests []BatchRequest) (string, error) {
	f.batches = append(f.batches, requests)
	return fmt.Sprintf("batches/%d", len(f.batches)), nil
}

func (f *fakeProvider) PollBatch(_ context.Context, name string) (*BatchStatus, error) {
	reqs := f.batches[len(f.batches)-1]
	responses := make(map[string]*GenerateResponse, len(reqs))
	for _, r := range reqs {
		responses[r.Key] = &GenerateResponse{
			Text:         `{"summary_markdown":"A summary.","citizen_impact_markdown":"Impact.","topics":["housing"],"confidence":"high"}`,
			FinishReason: FinishStop,
			InputTokens:  100,
			OutputTokens: 50,
		}
	}
	return &BatchStatus{Name: name, State: BatchSucceeded, Responses: responses}, nil
}

func (f *fakeProvider) CreateCache(_ context.Context, model, contents string, ttl time.Duration) (string, error) {
	f.cacheCalls = append(f.cacheCalls, contents)
	return "cachedContents/test-cache", nil
}

func (f *fakeProvider) DeleteCache(_ context.Context, name string) error {
	f.deleteCalls = append(f.deleteCalls, name)
	return nil
}

// newTestOrchestrator wires a fake provider with a sleep recorder.
func newTestOrchestrator(p Provider) (*Orchestrator, *[]time.Duration) {
	o := NewOrchestrator(p, testLLMConfig(), topics.NewNormalizer(""), nil)
	var sleeps []time.Duration
	o.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return o, &sleeps
}

func TestParseRetryDelay(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Duration
		ok   bool
	}{
		{"double quoted seconds", `{"error": {"details": [{"retryDelay": "45s"}]}}`, 45 * time.Second, true},
		{"fractional seconds", `"retryDelay": "0.5s"`, 500 * time.Millisecond, true},
		{"single quotes", `'retryDelay': '30s'`, 30 * time.Second, true},
		{"bare key value", `retryDelay=12s`, 12 * time.Second, true},
		{"milliseconds", `"retryDelay": "1500ms"`, 1500 * time.Millisecond, true},
		{"snake case", `"retry_delay": "20s"`, 20 * time.Second, true},
		{"object seconds form", `"retryDelay": {"seconds": 45}`, 45 * time.Second, true},
		{"no unit defaults to seconds", `"retryDelay": 60`, 60 * time.Second, true},
		{"absent", `{"error": {"code": 429, "message": "quota"}}`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryDelay(tt.body)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRetryHonorsProviderDelayHint(t *testing.T) {
	calls := 0
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		calls++
		if calls == 1 {
			return nil, &RateLimitError{RetryDelay: 45 * time.Second, HasDelay: true}
		}
		return &GenerateResponse{
			Text:         `{"summary_markdown":"The council approved the budget.","topics":["budget"],"confidence":"high"}`,
			FinishReason: FinishStop,
			InputTokens:  200,
			OutputTokens: 80,
		}, nil
	}}
	o, sleeps := newTestOrchestrator(p)

	summary, err := o.SummarizeItem(context.Background(), ItemRequest{Title: "FY26 budget", Text: "text"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "success on second attempt")
	require.Len(t, *sleeps, 1, "exactly one backoff")
	assert.Equal(t, 46*time.Second, (*sleeps)[0], "provider hint plus one second cushion")
	assert.Equal(t, "The council approved the budget.", summary.Summary)
	assert.Equal(t, []string{"budget"}, summary.Topics)
}

func TestRetryFallbackScheduleThenExhaustion(t *testing.T) {
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		return nil, &RateLimitError{} // 429 with no hint, forever
	}}
	o, sleeps := newTestOrchestrator(p)

	_, err := o.SummarizeItem(context.Background(), ItemRequest{Title: "x", Text: "y"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLLM, "exhaustion surfaces exactly one terminal error")
	assert.Equal(t, []time.Duration{30 * time.Second, 60 * time.Second, 90 * time.Second}, *sleeps)
}

func TestNon429ErrorRaisesImmediately(t *testing.T) {
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		return nil, fmt.Errorf("%w: provider returned 500", ErrLLM)
	}}
	o, sleeps := newTestOrchestrator(p)

	_, err := o.SummarizeItem(context.Background(), ItemRequest{Title: "x"})
	require.Error(t, err)
	assert.Empty(t, *sleeps, "no backoff for non-429 errors")
}

func TestTruncationSalvage(t *testing.T) {
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		return &GenerateResponse{
			Text:         `{"summary_markdown":"The council will consider a rezoning of 100 Main St.","citizen_impact_markdown":"`,
			FinishReason: FinishMaxTokens,
		}, nil
	}}
	o, _ := newTestOrchestrator(p)

	summary, err := o.SummarizeItem(context.Background(), ItemRequest{Title: "Rezoning"})
	require.NoError(t, err, "a recoverable summary means the item succeeds")
	assert.True(t, summary.Truncated)
	assert.Contains(t, summary.Summary, "The council will consider a rezoning of 100 Main St.")
	assert.Contains(t, summary.Summary, "truncated")
	assert.Equal(t, []string{"other"}, summary.Topics, "empty topics fall back to other")
	assert.Equal(t, "low", summary.Confidence)
}

func TestTruncationWithNoRecoverableSummaryFails(t *testing.T) {
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		return &GenerateResponse{Text: `{"citizen_impa`, FinishReason: FinishMaxTokens}, nil
	}}
	o, _ := newTestOrchestrator(p)

	_, err := o.SummarizeItem(context.Background(), ItemRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrLLM)
}

func TestSalvageSummary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"clean close before cut", `{"summary_markdown": "Done.", "topics": [`, "Done.", true},
		{"cut mid value", `{"summary_markdown": "Cut off her`, "Cut off her", true},
		{"escaped quotes survive", `{"summary_markdown": "He said \"yes\" and`, `He said "yes" and`, true},
		{"newline escape decoded", `{"summary_markdown": "Line one\nLine two`, "Line one\nLine two", true},
		{"field missing", `{"topics": ["housing"]}`, "", false},
		{"empty value", `{"summary_markdown": "`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := salvageSummary(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectItemModel(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeProvider{})

	assert.Equal(t, "gemini-2.5-flash", o.selectItemModel(20, 50_000), "default class")
	assert.Equal(t, "gemini-2.5-pro", o.selectItemModel(150, 50_000), "big documents go pro")

	o.cfg.UseFlashLite = true
	assert.Equal(t, "gemini-2.5-flash-lite", o.selectItemModel(20, 50_000))
	assert.Equal(t, "gemini-2.5-flash", o.selectItemModel(80, 50_000), "too many pages for lite")
	assert.Equal(t, "gemini-2.5-flash", o.selectItemModel(20, 250_000), "too much text for lite")
}

func TestThinkingBudget(t *testing.T) {
	simple := thinkingBudget(5, 10_000)
	require.NotNil(t, simple)
	assert.Equal(t, 0, *simple, "simple items disable extended reasoning")

	assert.Nil(t, thinkingBudget(40, 100_000), "medium items use model defaults")

	complexBudget := thinkingBudget(150, 500_000)
	require.NotNil(t, complexBudget)
	assert.Equal(t, -1, *complexBudget, "complex items reason unbounded")
}

func TestSummarizeMeetingPromptSelection(t *testing.T) {
	var prompts []string
	p := &fakeProvider{generate: func(model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
		prompts = append(prompts, prompt)
		return &GenerateResponse{Text: "## Meeting summary", FinishReason: FinishStop}, nil
	}}
	o, _ := newTestOrchestrator(p)

	_, err := o.SummarizeMeeting(context.Background(), "short packet", 12)
	require.NoError(t, err)
	_, err = o.SummarizeMeeting(context.Background(), "long packet", 80)
	require.NoError(t, err)

	require.Len(t, prompts, 2)
	assert.NotContains(t, prompts[0], "Major items", "short prompt for <=30 pages")
	assert.Contains(t, prompts[1], "Major items", "comprehensive prompt beyond 30 pages")
}

func TestBatchChunkingAndDelays(t *testing.T) {
	p := &fakeProvider{}
	o, sleeps := newTestOrchestrator(p)

	items := make([]ItemRequest, 7)
	for i := range items {
		items[i] = ItemRequest{Key: fmt.Sprintf("item-%d", i), Title: "t", Text: "x"}
	}

	var got int
	for result := range o.SummarizeItemsBatch(context.Background(), "", items) {
		require.NoError(t, result.Err)
		got += len(result.Summaries)
	}
	assert.Equal(t, 7, got)

	require.Len(t, p.batches, 2)
	assert.Len(t, p.batches[0], 5)
	assert.Len(t, p.batches[1], 2)

	// One inter-chunk quota pause; poll sleeps are shorter and filtered out.
	var chunkDelays int
	for _, d := range *sleeps {
		if d == o.cfg.BatchChunkDelay {
			chunkDelays++
		}
	}
	assert.Equal(t, 1, chunkDelays)
}

func TestBatchExactChunkSizeHasNoDelay(t *testing.T) {
	p := &fakeProvider{}
	o, sleeps := newTestOrchestrator(p)

	items := make([]ItemRequest, 5)
	for i := range items {
		items[i] = ItemRequest{Key: fmt.Sprintf("item-%d", i), Title: "t"}
	}
	for result := range o.SummarizeItemsBatch(context.Background(), "", items) {
		require.NoError(t, result.Err)
	}

	for _, d := range *sleeps {
		assert.NotEqual(t, o.cfg.BatchChunkDelay, d, "a single full chunk needs no quota pause")
	}
	require.Len(t, p.batches, 1)
}

func TestBatchContextCacheLifecycle(t *testing.T) {
	p := &fakeProvider{}
	o, _ := newTestOrchestrator(p)

	// ~8000 chars / 4 = ~2000 estimated tokens, above the 1024 threshold.
	bigContext := make([]byte, 8000)
	for i := range bigContext {
		bigContext[i] = 'a'
	}

	items := []ItemRequest{{Key: "item-0", Title: "t"}}
	for result := range o.SummarizeItemsBatch(context.Background(), string(bigContext), items) {
		require.NoError(t, result.Err)
	}

	require.Len(t, p.cacheCalls, 1, "large shared context creates a cache")
	assert.Equal(t, []string{"cachedContents/test-cache"}, p.deleteCalls, "cache destroyed after the run")

	require.Len(t, p.batches, 1)
	assert.Equal(t, "cachedContents/test-cache", p.batches[0][0].Config.CachedContent)
}

func TestBatchSmallContextSkipsCache(t *testing.T) {
	p := &fakeProvider{}
	o, _ := newTestOrchestrator(p)

	items := []ItemRequest{{Key: "item-0", Title: "t"}}
	for result := range o.SummarizeItemsBatch(context.Background(), "tiny", items) {
		require.NoError(t, result.Err)
	}
	assert.Empty(t, p.cacheCalls)
	assert.Empty(t, p.deleteCalls)
}

func TestCallCost(t *testing.T) {
	direct := callCost("gemini-2.5-flash", 1_000_000, 100_000, false)
	assert.InDelta(t, 0.30+0.25, direct, 1e-9)

	batch := callCost("gemini-2.5-flash", 1_000_000, 100_000, true)
	assert.InDelta(t, direct/2, batch, 1e-9)

	versioned := callCost("gemini-2.5-flash-lite-001", 1_000_000, 0, false)
	assert.InDelta(t, 0.10, versioned, 1e-9)
}

func TestRateLimitErrorUnwrapsWithAs(t *testing.T) {
	var target *RateLimitError
	err := fmt.Errorf("call failed: %w", &RateLimitError{RetryDelay: time.Second, HasDelay: true})
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, time.Second, target.RetryDelay)
}
