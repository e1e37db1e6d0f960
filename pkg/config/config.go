// Package config loads the process-wide immutable configuration: recognized
// environment options, vendor politeness settings, and the city registry.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	configDir string

	// Sync loop
	SyncInterval      time.Duration // SYNC_INTERVAL_HOURS, default 72h
	FetchConcurrency  int           // per-vendor concurrent city syncs, default 1
	HistoricalCutoff  time.Duration // HISTORICAL_CUTOFF_DAYS, default 180d
	FutureCutoff      time.Duration // FUTURE_CUTOFF_DAYS, default 60d
	CitySyncRetries   int           // retries per city sync, default 3
	ShutdownGrace     time.Duration // SHUTDOWN_GRACE_S, default 15s

	// Queue / processing loop
	LLMConcurrency int           // worker count, default 3
	MaxRetries     int           // MAX_RETRIES, default 3
	QueueLeaseTTL  time.Duration // QUEUE_LEASE_TTL_S, default 600s
	ClaimInterval  time.Duration // poll interval for the processing loop
	ClaimJitter    time.Duration

	// LLM
	LLM LLMConfig

	// PDF extraction
	PDFExtractTimeout time.Duration // PDF_EXTRACT_TIMEOUT_S, default 600s

	// Retention
	CleanupInterval time.Duration // CLEANUP_INTERVAL_HOURS, default 6h
	CacheRetention  time.Duration // CACHE_RETENTION_DAYS, default 90d
	JobRetention    time.Duration // JOB_RETENTION_DAYS, default 30d

	// Vendor settings (rate limits, tokens)
	Vendors VendorSettings

	// City registry loaded from cities.yaml
	Cities []CityConfig
}

// LLMConfig groups the LLM provider options.
type LLMConfig struct {
	APIKey          string
	BaseURL         string // provider endpoint; default Gemini generative language API
	FlashModel      string
	FlashLiteModel  string
	ProModel        string
	UseFlashLite    bool          // USE_FLASH_LITE, default false
	CallTimeout     time.Duration // LLM_CALL_TIMEOUT_S, default 300s
	RetryBudget     time.Duration // LLM_RETRY_BUDGET_S, default 180s
	BatchChunkSize  int           // BATCH_CHUNK_SIZE, default 5
	BatchChunkDelay time.Duration // BATCH_CHUNK_DELAY_S, default 120s
	CacheMinTokens  int           // provider-specific context cache threshold, default 1024
}

// Load reads configuration from the environment (after godotenv has been
// applied by the caller) and the city registry from configDir.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		configDir:        configDir,
		SyncInterval:     time.Duration(envInt("SYNC_INTERVAL_HOURS", 72)) * time.Hour,
		FetchConcurrency: envInt("FETCH_CONCURRENCY", 1),
		HistoricalCutoff: time.Duration(envInt("HISTORICAL_CUTOFF_DAYS", 180)) * 24 * time.Hour,
		FutureCutoff:     time.Duration(envInt("FUTURE_CUTOFF_DAYS", 60)) * 24 * time.Hour,
		CitySyncRetries:  envInt("CITY_SYNC_RETRIES", 3),
		ShutdownGrace:    time.Duration(envInt("SHUTDOWN_GRACE_S", 15)) * time.Second,

		LLMConcurrency: envInt("LLM_CONCURRENCY", 3),
		MaxRetries:     envInt("MAX_RETRIES", 3),
		QueueLeaseTTL:  time.Duration(envInt("QUEUE_LEASE_TTL_S", 600)) * time.Second,
		ClaimInterval:  time.Duration(envInt("CLAIM_INTERVAL_MS", 2000)) * time.Millisecond,
		ClaimJitter:    500 * time.Millisecond,

		LLM: LLMConfig{
			APIKey:          os.Getenv("LLM_API_KEY"),
			BaseURL:         envStr("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			FlashModel:      envStr("LLM_FLASH_MODEL", "gemini-2.5-flash"),
			FlashLiteModel:  envStr("LLM_FLASH_LITE_MODEL", "gemini-2.5-flash-lite"),
			ProModel:        envStr("LLM_PRO_MODEL", "gemini-2.5-pro"),
			UseFlashLite:    envBool("USE_FLASH_LITE", false),
			CallTimeout:     time.Duration(envInt("LLM_CALL_TIMEOUT_S", 300)) * time.Second,
			RetryBudget:     time.Duration(envInt("LLM_RETRY_BUDGET_S", 180)) * time.Second,
			BatchChunkSize:  envInt("BATCH_CHUNK_SIZE", 5),
			BatchChunkDelay: time.Duration(envInt("BATCH_CHUNK_DELAY_S", 120)) * time.Second,
			CacheMinTokens:  envInt("LLM_CACHE_MIN_TOKENS", 1024),
		},

		PDFExtractTimeout: time.Duration(envInt("PDF_EXTRACT_TIMEOUT_S", 600)) * time.Second,

		CleanupInterval: time.Duration(envInt("CLEANUP_INTERVAL_HOURS", 6)) * time.Hour,
		CacheRetention:  time.Duration(envInt("CACHE_RETENTION_DAYS", 90)) * 24 * time.Hour,
		JobRetention:    time.Duration(envInt("JOB_RETENTION_DAYS", 30)) * 24 * time.Hour,
	}

	if cfg.LLMConcurrency < 1 {
		return nil, fmt.Errorf("LLM_CONCURRENCY must be >= 1, got %d", cfg.LLMConcurrency)
	}
	if cfg.FetchConcurrency < 1 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY must be >= 1, got %d", cfg.FetchConcurrency)
	}

	vendors, err := loadVendorSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("load vendor settings: %w", err)
	}
	cfg.Vendors = vendors

	cities, err := loadCities(configDir)
	if err != nil {
		return nil, fmt.Errorf("load city registry: %w", err)
	}
	cfg.Cities = cities

	return cfg, nil
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
