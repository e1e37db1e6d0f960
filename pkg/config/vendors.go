package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// VendorSetting controls politeness and transport behavior for one vendor.
type VendorSetting struct {
	// RateLimitDelay is the minimum gap between requests to this vendor.
	RateLimitDelay time.Duration `yaml:"rate_limit_delay"`
	// RateLimitJitter is added on top of RateLimitDelay, uniformly random.
	RateLimitJitter time.Duration `yaml:"rate_limit_jitter"`
	// RequestTimeout is the total HTTP timeout for one vendor request.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// ConnectTimeout bounds connection establishment.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	// APITokenEnv names the env var holding this vendor's API token, if any.
	APITokenEnv string `yaml:"api_token_env"`
}

// VendorSettings maps vendor tag to its settings. The "default" entry applies
// to vendors without an explicit override.
type VendorSettings map[string]VendorSetting

// builtinVendorSettings carries the observed politeness requirements of each
// platform. civicplus throttles aggressively, hence the jitter.
func builtinVendorSettings() VendorSettings {
	return VendorSettings{
		"default": {
			RateLimitDelay: 5 * time.Second,
			RequestTimeout: 30 * time.Second,
			ConnectTimeout: 10 * time.Second,
		},
		"primegov": {
			RateLimitDelay: 3 * time.Second,
			RequestTimeout: 30 * time.Second,
			ConnectTimeout: 10 * time.Second,
		},
		"granicus": {
			RateLimitDelay: 4 * time.Second,
			RequestTimeout: 30 * time.Second,
			ConnectTimeout: 10 * time.Second,
		},
		"civicplus": {
			RateLimitDelay:  8 * time.Second,
			RateLimitJitter: 2 * time.Second,
			RequestTimeout:  30 * time.Second,
			ConnectTimeout:  10 * time.Second,
		},
	}
}

// Get resolves the setting for a vendor, falling back to "default".
func (s VendorSettings) Get(vendor string) VendorSetting {
	if v, ok := s[vendor]; ok {
		return v
	}
	return s["default"]
}

type vendorsYAML struct {
	Vendors VendorSettings `yaml:"vendors"`
}

// loadVendorSettings merges vendors.yaml (if present) over the built-in table.
func loadVendorSettings(configDir string) (VendorSettings, error) {
	settings := builtinVendorSettings()

	path := filepath.Join(configDir, "vendors.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var user vendorsYAML
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// User-provided entries win over the builtin table.
	if err := mergo.Merge(&settings, user.Vendors, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge vendor settings: %w", err)
	}
	return settings, nil
}
