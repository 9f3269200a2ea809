// Package config loads analytics fetcher configuration from environment
// variables and validates it before any network activity happens.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Environment variable names.
const (
	EnvAPIKey         = "ANALYTICS_API_KEY"
	EnvBaseURL        = "ALTVERSE_API_URL"
	EnvRequestTimeout = "ANALYTICS_REQUEST_TIMEOUT"
	EnvOutputFile     = "ANALYTICS_OUTPUT_FILE"
	EnvSchedule       = "ANALYTICS_FETCH_SCHEDULE"
	EnvLogLevel       = "ANALYTICS_LOG_LEVEL"
)

// Config holds all analytics fetcher configuration.
type Config struct {
	// APIKey is the static credential sent as the x-api-key header.
	APIKey string

	// BaseURL is the analytics API base URL; the /analytics path is
	// appended by the client. Trailing slashes are trimmed.
	BaseURL string

	// RequestTimeout bounds each individual query call.
	RequestTimeout time.Duration

	// OutputFile is where the aggregated report is written.
	OutputFile string

	// Schedule is an optional cron expression. Empty means run the batch
	// once and exit.
	Schedule string

	// LogLevel controls diagnostic verbosity (debug, info, warn, error).
	LogLevel string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKey:         os.Getenv(EnvAPIKey),
		BaseURL:        strings.TrimRight(os.Getenv(EnvBaseURL), "/"),
		RequestTimeout: getEnvDuration(EnvRequestTimeout, 30*time.Second),
		OutputFile:     getEnv(EnvOutputFile, "analytics.json"),
		Schedule:       os.Getenv(EnvSchedule),
		LogLevel:       getEnv(EnvLogLevel, "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the required configuration is present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s environment variable must be set", EnvAPIKey)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%s environment variable must be set", EnvBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
