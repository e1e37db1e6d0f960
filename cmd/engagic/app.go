package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/Engagic/engagic-sub004/pkg/adapters"
	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/database"
	"github.com/Engagic/engagic-sub004/pkg/extract"
	"github.com/Engagic/engagic-sub004/pkg/fetcher"
	"github.com/Engagic/engagic-sub004/pkg/llm"
	"github.com/Engagic/engagic-sub004/pkg/metrics"
	"github.com/Engagic/engagic-sub004/pkg/processor"
	"github.com/Engagic/engagic-sub004/pkg/services"
	"github.com/Engagic/engagic-sub004/pkg/topics"
)

// app bundles the shared runtime wired once per command invocation.
type app struct {
	cfg      *config.Config
	dbClient *database.Client
	svcs     *services.Services
	registry *adapters.Registry
	limiter  *adapters.RateLimiter
	fetcher  *fetcher.Fetcher
	sink     metrics.Sink
	podID    string

	meterProvider *sdkmetric.MeterProvider
}

// newApp loads configuration, connects to the database, syncs the city
// registry, and wires the fetch side. The processing side is built on demand
// by buildProcessor since not every command needs an LLM key.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	slog.Info("Connected to PostgreSQL database")

	a := &app{
		cfg:      cfg,
		dbClient: dbClient,
		svcs:     services.New(dbClient.Client, dbClient.DB()),
		podID:    resolvePodID(),
	}

	a.sink, err = a.buildSink()
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.svcs.City.SyncRegistry(ctx, cfg.Cities); err != nil {
		a.Close()
		return nil, fmt.Errorf("sync city registry: %w", err)
	}

	a.registry = adapters.NewRegistry(cfg)
	a.limiter = adapters.NewRateLimiter(cfg)
	a.fetcher = fetcher.New(dbClient.Client, a.registry, a.limiter, a.svcs, cfg, a.sink)

	return a, nil
}

// buildSink selects the metrics backend: OTel with the stdout exporter when
// METRICS_STDOUT is set, structured log lines otherwise.
func (a *app) buildSink() (metrics.Sink, error) {
	if on, _ := strconv.ParseBool(os.Getenv("METRICS_STDOUT")); on {
		provider, err := metrics.NewStdoutProvider(60 * time.Second)
		if err != nil {
			return nil, fmt.Errorf("init metrics provider: %w", err)
		}
		a.meterProvider = provider
		sink, err := metrics.NewOTelSink(provider.Meter("engagic"))
		if err != nil {
			return nil, fmt.Errorf("init metrics sink: %w", err)
		}
		return sink, nil
	}
	return metrics.NewSlogSink(slog.Default()), nil
}

// buildProcessor wires the processing side: downloader, PDF extractor, and
// the LLM orchestrator.
func (a *app) buildProcessor() (*processor.Processor, error) {
	if a.cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required for processing")
	}

	normalizer := topics.NewNormalizer(os.Getenv("TOPICS_UNKNOWN_LOG"))
	provider := llm.NewGeminiClient(a.cfg.LLM)
	orchestrator := llm.NewOrchestrator(provider, a.cfg.LLM, normalizer, a.sink)

	downloader := extract.NewDownloader(a.cfg.PDFExtractTimeout)
	extractor := extract.NewPDFExtractor(a.cfg.LLMConcurrency, a.cfg.PDFExtractTimeout, a.sink)

	return processor.New(a.svcs, downloader, extractor, orchestrator, a.cfg), nil
}

// Close releases the database pool and flushes metrics.
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metrics.ShutdownProvider(ctx, a.meterProvider); err != nil {
		slog.Warn("Metrics provider shutdown failed", "error", err)
	}
	if err := a.dbClient.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}
