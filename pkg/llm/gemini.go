package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
)

// GeminiClient is the REST client for the generative language API.
type GeminiClient struct {
	cfg  config.LLMConfig
	http *http.Client

	// Batch submissions are correlated back to caller keys by order.
	mu        sync.Mutex
	batchKeys map[string][]string
}

// NewGeminiClient builds a provider client from config.
func NewGeminiClient(cfg config.LLMConfig) *GeminiClient {
	return &GeminiClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.CallTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		batchKeys: make(map[string][]string),
	}
}

type geminiContent struct {
	Role  string `json:"role,omitempty"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

func textContent(text string) geminiContent {
	var c geminiContent
	c.Parts = append(c.Parts, struct {
		Text string `json:"text"`
	}{Text: text})
	return c
}

type geminiGenerationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
	MaxOutputTokens  int                    `json:"maxOutputTokens,omitempty"`
	Temperature      float64                `json:"temperature,omitempty"`
	ThinkingConfig   *struct {
		ThinkingBudget int `json:"thinkingBudget"`
	} `json:"thinkingConfig,omitempty"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	CachedContent    string                 `json:"cachedContent,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

func buildGenerateRequest(prompt string, cfg GenerateConfig) geminiGenerateRequest {
	req := geminiGenerateRequest{
		Contents:      []geminiContent{textContent(prompt)},
		CachedContent: cfg.CachedContent,
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     cfg.Temperature,
		},
	}
	if cfg.ResponseSchema != nil {
		req.GenerationConfig.ResponseMimeType = "application/json"
		req.GenerationConfig.ResponseSchema = cfg.ResponseSchema
	}
	if cfg.ThinkingBudget != nil {
		req.GenerationConfig.ThinkingConfig = &struct {
			ThinkingBudget int `json:"thinkingBudget"`
		}{ThinkingBudget: *cfg.ThinkingBudget}
	}
	return req
}

// GenerateContent performs a single generation call. 429s are returned as
// *RateLimitError with the provider's retryDelay hint when present.
func (c *GeminiClient) GenerateContent(ctx context.Context, model, prompt string, cfg GenerateConfig) (*GenerateResponse, error) {
	body, err := c.post(ctx, fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, model),
		buildGenerateRequest(prompt, cfg))
	if err != nil {
		return nil, err
	}

	var resp geminiGenerateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrLLM, err)
	}
	return convertResponse(&resp)
}

func convertResponse(resp *geminiGenerateResponse) (*GenerateResponse, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: response has no candidates", ErrLLM)
	}
	cand := resp.Candidates[0]
	if cand.FinishReason == "SAFETY" || cand.FinishReason == "PROHIBITED_CONTENT" {
		return nil, fmt.Errorf("%w: finish reason %s", ErrContentFiltered, cand.FinishReason)
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		sb.WriteString(part.Text)
	}

	reason := FinishReason(cand.FinishReason)
	switch reason {
	case FinishStop, FinishMaxTokens:
	default:
		reason = FinishOther
	}

	return &GenerateResponse{
		Text:         sb.String(),
		FinishReason: reason,
		InputTokens:  resp.UsageMetadata.PromptTokenCount,
		OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
	}, nil
}

type geminiBatchRequest struct {
	Batch struct {
		DisplayName  string `json:"displayName"`
		InputConfig  struct {
			Requests struct {
				Requests []struct {
					Request geminiGenerateRequest `json:"request"`
				} `json:"requests"`
			} `json:"requests"`
		} `json:"inputConfig"`
	} `json:"batch"`
}

type geminiBatchStatus struct {
	Name     string `json:"name"`
	Metadata struct {
		State string `json:"state"`
	} `json:"metadata"`
	Response struct {
		InlinedResponses struct {
			InlinedResponses []struct {
				Response geminiGenerateResponse `json:"response"`
				Error    struct {
					Message string `json:"message"`
				} `json:"error"`
			} `json:"inlinedResponses"`
		} `json:"inlinedResponses"`
	} `json:"response"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateBatch submits a batch generation job. All requests must share a model.
func (c *GeminiClient) CreateBatch(ctx context.Context, requests []BatchRequest) (string, error) {
	if len(requests) == 0 {
		return "", fmt.Errorf("%w: empty batch", ErrLLM)
	}
	model := requests[0].Model

	var payload geminiBatchRequest
	payload.Batch.DisplayName = fmt.Sprintf("engagic-batch-%d", time.Now().UnixNano())
	keys := make([]string, 0, len(requests))
	for _, r := range requests {
		payload.Batch.InputConfig.Requests.Requests = append(
			payload.Batch.InputConfig.Requests.Requests,
			struct {
				Request geminiGenerateRequest `json:"request"`
			}{Request: buildGenerateRequest(r.Prompt, r.Config)})
		keys = append(keys, r.Key)
	}

	body, err := c.post(ctx, fmt.Sprintf("%s/models/%s:batchGenerateContent", c.cfg.BaseURL, model), payload)
	if err != nil {
		return "", err
	}

	var created struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &created); err != nil || created.Name == "" {
		return "", fmt.Errorf("%w: batch create returned no name", ErrLLM)
	}

	c.mu.Lock()
	c.batchKeys[created.Name] = keys
	c.mu.Unlock()
	return created.Name, nil
}

// PollBatch fetches batch state. Responses are keyed by the submission keys
// once the batch reaches a terminal state.
func (c *GeminiClient) PollBatch(ctx context.Context, name string) (*BatchStatus, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%s", c.cfg.BaseURL, name))
	if err != nil {
		return nil, err
	}

	var raw geminiBatchStatus
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed batch status: %v", ErrLLM, err)
	}

	status := &BatchStatus{Name: name, Error: raw.Error.Message}
	switch raw.Metadata.State {
	case "BATCH_STATE_SUCCEEDED":
		status.State = BatchSucceeded
	case "BATCH_STATE_FAILED", "BATCH_STATE_CANCELLED", "BATCH_STATE_EXPIRED":
		status.State = BatchFailed
	case "BATCH_STATE_RUNNING":
		status.State = BatchRunning
	default:
		status.State = BatchPending
	}

	if status.State == BatchSucceeded {
		c.mu.Lock()
		keys := c.batchKeys[name]
		delete(c.batchKeys, name)
		c.mu.Unlock()

		status.Responses = make(map[string]*GenerateResponse)
		for i, inlined := range raw.Response.InlinedResponses.InlinedResponses {
			if i >= len(keys) {
				break
			}
			if inlined.Error.Message != "" {
				continue
			}
			resp, err := convertResponse(&inlined.Response)
			if err != nil {
				continue
			}
			status.Responses[keys[i]] = resp
		}
	}
	return status, nil
}

// CreateCache uploads shared context as a cached-content resource.
func (c *GeminiClient) CreateCache(ctx context.Context, model, contents string, ttl time.Duration) (string, error) {
	payload := map[string]interface{}{
		"model":    "models/" + model,
		"contents": []geminiContent{textContent(contents)},
		"ttl":      fmt.Sprintf("%ds", int(ttl.Seconds())),
	}
	body, err := c.post(ctx, c.cfg.BaseURL+"/cachedContents", payload)
	if err != nil {
		return "", err
	}
	var created struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &created); err != nil || created.Name == "" {
		return "", fmt.Errorf("%w: cache create returned no name", ErrLLM)
	}
	return created.Name, nil
}

// DeleteCache removes a cached-content resource.
func (c *GeminiClient) DeleteCache(ctx context.Context, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/%s", c.cfg.BaseURL, name), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLLM, err)
	}
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLLM, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: cache delete returned %d", ErrLLM, resp.StatusCode)
	}
	return nil
}

// post sends JSON and returns the response body, mapping provider errors.
func (c *GeminiClient) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrLLM, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	return c.do(req)
}

// get fetches a resource, mapping provider errors.
func (c *GeminiClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	return c.do(req)
}

func (c *GeminiClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrLLM, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		delay, ok := ParseRetryDelay(string(body))
		return nil, &RateLimitError{RetryDelay: delay, HasDelay: ok, Body: string(body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: provider returned %d: %s", ErrLLM, resp.StatusCode, truncateForLog(string(body)))
	}
	return body, nil
}

func truncateForLog(s string) string {
	if len(s) > 300 {
		return s[:300] + "..."
	}
	return s
}

// ParseRetryDelay extracts the provider's retryDelay hint from a 429 body.
// Several formats occur in the wild:
//
//	"retryDelay": "45s"
//	"retryDelay": "0.5s"
//	'retryDelay': '45s'
//	retryDelay=45s
//	"retryDelay": {"seconds": 45}
func ParseRetryDelay(body string) (time.Duration, bool) {
	if m := retryDelayStringRe.FindStringSubmatch(body); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			unit := time.Second
			if strings.EqualFold(m[2], "ms") {
				unit = time.Millisecond
			}
			return time.Duration(value * float64(unit)), true
		}
	}
	if m := retryDelaySecondsRe.FindStringSubmatch(body); m != nil {
		value, err := strconv.Atoi(m[1])
		if err == nil {
			return time.Duration(value) * time.Second, true
		}
	}
	return 0, false
}
