package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/mzaglia/passmint/internal/breach"
)

// Config holds application configuration.
type Config struct {
	// DefaultLength is the password length used when the caller gives none.
	DefaultLength int `json:"default_length"`

	// HIBPBaseURL overrides the breach range-query endpoint.
	// Useful for self-hosted mirrors and tests.
	HIBPBaseURL string `json:"hibp_base_url,omitempty"`

	// HTTPTimeoutSecs bounds the breach lookup request.
	HTTPTimeoutSecs int `json:"http_timeout_secs,omitempty"`

	// DisableBreachCheck turns off the online lookup entirely.
	// Strength evaluation then runs fully offline.
	DisableBreachCheck bool `json:"disable_breach_check,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are warned about at startup.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultLength:   12,
		HTTPTimeoutSecs: 10,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.passmint.
func Load(baseDir string) (*Config, error) {
	path := filepath.Join(baseDir, "config.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.DefaultLength == 0 {
		cfg.DefaultLength = 12
	}
	if cfg.HTTPTimeoutSecs == 0 {
		cfg.HTTPTimeoutSecs = 10
	}
	return cfg, nil
}

// Checker builds the breach-lookup capability from the configuration,
// or nil when breach checking is disabled.
func (c *Config) Checker() breach.Checker {
	if c.DisableBreachCheck {
		return nil
	}
	return breach.NewClient(c.HIBPBaseURL, time.Duration(c.HTTPTimeoutSecs)*time.Second)
}
