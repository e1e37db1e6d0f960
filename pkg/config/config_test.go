package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.SyncInterval)
	assert.Equal(t, 3, cfg.LLMConcurrency)
	assert.Equal(t, 1, cfg.FetchConcurrency)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.QueueLeaseTTL)
	assert.Equal(t, 180*24*time.Hour, cfg.HistoricalCutoff)
	assert.Equal(t, 60*24*time.Hour, cfg.FutureCutoff)
	assert.Equal(t, 15*time.Second, cfg.ShutdownGrace)
	assert.Equal(t, 10*time.Minute, cfg.PDFExtractTimeout)

	assert.False(t, cfg.LLM.UseFlashLite)
	assert.Equal(t, 5, cfg.LLM.BatchChunkSize)
	assert.Equal(t, 120*time.Second, cfg.LLM.BatchChunkDelay)
	assert.Equal(t, 3*time.Minute, cfg.LLM.RetryBudget)
	assert.Equal(t, 5*time.Minute, cfg.LLM.CallTimeout)
	assert.Equal(t, 1024, cfg.LLM.CacheMinTokens)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SYNC_INTERVAL_HOURS", "24")
	t.Setenv("LLM_CONCURRENCY", "8")
	t.Setenv("USE_FLASH_LITE", "true")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.SyncInterval)
	assert.Equal(t, 8, cfg.LLMConcurrency)
	assert.True(t, cfg.LLM.UseFlashLite)
}

func TestLoadRejectsBadConcurrency(t *testing.T) {
	t.Setenv("LLM_CONCURRENCY", "0")
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestVendorSettings(t *testing.T) {
	s := builtinVendorSettings()

	assert.Equal(t, 3*time.Second, s.Get("primegov").RateLimitDelay)
	assert.Equal(t, 4*time.Second, s.Get("granicus").RateLimitDelay)
	assert.Equal(t, 8*time.Second, s.Get("civicplus").RateLimitDelay)
	assert.Equal(t, 2*time.Second, s.Get("civicplus").RateLimitJitter)

	t.Run("unknown vendors fall back to default", func(t *testing.T) {
		assert.Equal(t, 5*time.Second, s.Get("legistar").RateLimitDelay)
		assert.Equal(t, 30*time.Second, s.Get("legistar").RequestTimeout)
	})
}

func TestVendorSettingsYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := `
vendors:
  granicus:
    rate_limit_delay: 10s
    request_timeout: 45s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendors.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Vendors.Get("granicus").RateLimitDelay)
	// Untouched vendors keep the builtin values.
	assert.Equal(t, 3*time.Second, cfg.Vendors.Get("primegov").RateLimitDelay)
}

func TestLoadCities(t *testing.T) {
	dir := t.TempDir()
	yaml := `
cities:
  - banana: paloaltoCA
    name: Palo Alto
    vendor: primegov
    vendor_slug: cityofpaloalto
  - banana: nashvilleTN
    name: Nashville
    state: TN
    vendor: legistar
    vendor_slug: nashville
    status: paused
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cities.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Cities, 2)

	pa := cfg.Cities[0]
	assert.Equal(t, "paloaltoCA", pa.Banana)
	assert.Equal(t, "CA", pa.State, "state recovered from banana tail")
	assert.Equal(t, "active", pa.Status)

	assert.Equal(t, "paused", cfg.Cities[1].Status)
}

func TestLoadCitiesRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	yaml := `
cities:
  - banana: paloaltoCA
    vendor: primegov
  - banana: paloaltoCA
    vendor: granicus
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cities.yaml"), []byte(yaml), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate banana")
}
