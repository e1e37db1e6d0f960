package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelSink publishes measurements through an OpenTelemetry meter.
type OTelSink struct {
	syncCount      metric.Int64Counter
	syncDuration   metric.Float64Histogram
	llmCount       metric.Int64Counter
	llmTokens      metric.Int64Counter
	llmCost        metric.Float64Counter
	llmDuration    metric.Float64Histogram
	queueDepth     metric.Int64Gauge
	extractCount   metric.Int64Counter
	extractPages   metric.Int64Counter
}

// NewOTelSink builds a Sink on the given meter.
func NewOTelSink(meter metric.Meter) (*OTelSink, error) {
	s := &OTelSink{}
	var err error

	if s.syncCount, err = meter.Int64Counter("engagic.sync.count",
		metric.WithDescription("City sync attempts")); err != nil {
		return nil, fmt.Errorf("create sync counter: %w", err)
	}
	if s.syncDuration, err = meter.Float64Histogram("engagic.sync.duration_seconds",
		metric.WithDescription("City sync duration")); err != nil {
		return nil, fmt.Errorf("create sync histogram: %w", err)
	}
	if s.llmCount, err = meter.Int64Counter("engagic.llm.calls",
		metric.WithDescription("LLM calls")); err != nil {
		return nil, fmt.Errorf("create llm counter: %w", err)
	}
	if s.llmTokens, err = meter.Int64Counter("engagic.llm.tokens",
		metric.WithDescription("LLM token usage")); err != nil {
		return nil, fmt.Errorf("create llm token counter: %w", err)
	}
	if s.llmCost, err = meter.Float64Counter("engagic.llm.cost_usd",
		metric.WithDescription("LLM spend in USD")); err != nil {
		return nil, fmt.Errorf("create llm cost counter: %w", err)
	}
	if s.llmDuration, err = meter.Float64Histogram("engagic.llm.duration_seconds",
		metric.WithDescription("LLM call duration")); err != nil {
		return nil, fmt.Errorf("create llm histogram: %w", err)
	}
	if s.queueDepth, err = meter.Int64Gauge("engagic.queue.depth",
		metric.WithDescription("Queue depth by status")); err != nil {
		return nil, fmt.Errorf("create queue gauge: %w", err)
	}
	if s.extractCount, err = meter.Int64Counter("engagic.extract.count",
		metric.WithDescription("PDF extraction attempts")); err != nil {
		return nil, fmt.Errorf("create extraction counter: %w", err)
	}
	if s.extractPages, err = meter.Int64Counter("engagic.extract.pages",
		metric.WithDescription("PDF pages extracted")); err != nil {
		return nil, fmt.Errorf("create extraction page counter: %w", err)
	}

	return s, nil
}

func (s *OTelSink) RecordSync(vendor, banana string, ok bool, duration time.Duration) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("vendor", vendor),
		attribute.String("banana", banana),
		attribute.Bool("ok", ok),
	)
	s.syncCount.Add(ctx, 1, attrs)
	s.syncDuration.Record(ctx, duration.Seconds(), attrs)
}

func (s *OTelSink) RecordLLMCall(model, promptType string, duration time.Duration, inTokens, outTokens int, costUSD float64, ok bool) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("prompt_type", promptType),
		attribute.Bool("ok", ok),
	)
	s.llmCount.Add(ctx, 1, attrs)
	s.llmDuration.Record(ctx, duration.Seconds(), attrs)
	s.llmTokens.Add(ctx, int64(inTokens), metric.WithAttributes(
		attribute.String("model", model), attribute.String("direction", "input")))
	s.llmTokens.Add(ctx, int64(outTokens), metric.WithAttributes(
		attribute.String("model", model), attribute.String("direction", "output")))
	s.llmCost.Add(ctx, costUSD, metric.WithAttributes(attribute.String("model", model)))
}

func (s *OTelSink) RecordQueueDepth(status string, n int) {
	s.queueDepth.Record(context.Background(), int64(n),
		metric.WithAttributes(attribute.String("status", status)))
}

func (s *OTelSink) RecordExtraction(ok bool, pages int) {
	ctx := context.Background()
	s.extractCount.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", ok)))
	if ok {
		s.extractPages.Add(ctx, int64(pages))
	}
}
