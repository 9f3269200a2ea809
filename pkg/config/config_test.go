package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvBaseURL, "https://api.altverse.example/")
	t.Setenv(EnvRequestTimeout, "5s")
	t.Setenv(EnvOutputFile, "out/analytics.json")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.altverse.example", cfg.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "out/analytics.json", cfg.OutputFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.Schedule)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvBaseURL, "https://api.altverse.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "analytics.json", cfg.OutputFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		baseURL string
		wantVar string
	}{
		{
			name:    "missing API key",
			baseURL: "https://api.altverse.example",
			wantVar: EnvAPIKey,
		},
		{
			name:    "missing base URL",
			apiKey:  "test-key",
			wantVar: EnvBaseURL,
		},
		{
			name:    "missing both reports API key first",
			wantVar: EnvAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIKey, tt.apiKey)
			t.Setenv(EnvBaseURL, tt.baseURL)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantVar)
		})
	}
}

func TestLoadConfigInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvBaseURL, "https://api.altverse.example")
	t.Setenv(EnvRequestTimeout, "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		APIKey:         "k",
		BaseURL:        "http://localhost:8080",
		RequestTimeout: time.Second,
		OutputFile:     "analytics.json",
	}
	require.NoError(t, cfg.Validate())

	cfg.RequestTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg.RequestTimeout = time.Second
	cfg.OutputFile = ""
	assert.Error(t, cfg.Validate())
}
