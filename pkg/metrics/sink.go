// Package metrics defines the narrow telemetry protocol consumed by the
// scheduler, fetcher, processor, and LLM orchestrator. A no-op implementation
// lets the core run without any telemetry system.
package metrics

import "time"

// Sink receives operational measurements from the pipeline.
type Sink interface {
	// RecordSync records one city sync attempt.
	RecordSync(vendor, banana string, ok bool, duration time.Duration)

	// RecordLLMCall records one LLM request with token and cost accounting.
	RecordLLMCall(model, promptType string, duration time.Duration, inTokens, outTokens int, costUSD float64, ok bool)

	// RecordQueueDepth records the number of jobs currently in a status.
	RecordQueueDepth(status string, n int)

	// RecordExtraction records one PDF extraction attempt.
	RecordExtraction(ok bool, pages int)
}

// Noop discards all measurements.
type Noop struct{}

// NewNoop returns a Sink that discards everything.
func NewNoop() *Noop { return &Noop{} }

func (Noop) RecordSync(string, string, bool, time.Duration)                        {}
func (Noop) RecordLLMCall(string, string, time.Duration, int, int, float64, bool)  {}
func (Noop) RecordQueueDepth(string, int)                                          {}
func (Noop) RecordExtraction(bool, int)                                            {}
