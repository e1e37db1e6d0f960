package metrics

import (
	"log/slog"
	"time"
)

// SlogSink logs every measurement through slog. Useful for one-shot CLI runs
// where a metrics backend is overkill but the operator still wants numbers.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink returns a Sink writing to the given logger (default logger if nil).
func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}
	return &SlogSink{log: log}
}

func (s *SlogSink) RecordSync(vendor, banana string, ok bool, duration time.Duration) {
	s.log.Info("metric: city sync",
		"vendor", vendor, "banana", banana, "ok", ok, "duration_ms", duration.Milliseconds())
}

func (s *SlogSink) RecordLLMCall(model, promptType string, duration time.Duration, inTokens, outTokens int, costUSD float64, ok bool) {
	s.log.Info("metric: llm call",
		"model", model, "prompt_type", promptType, "duration_ms", duration.Milliseconds(),
		"in_tokens", inTokens, "out_tokens", outTokens, "cost_usd", costUSD, "ok", ok)
}

func (s *SlogSink) RecordQueueDepth(status string, n int) {
	s.log.Debug("metric: queue depth", "status", status, "n", n)
}

func (s *SlogSink) RecordExtraction(ok bool, pages int) {
	s.log.Debug("metric: pdf extraction", "ok", ok, "pages", pages)
}
