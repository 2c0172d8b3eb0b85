package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "content_cache:\n  ai_version: gen-2024-06\n")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "gen-2024-06", cfg.ContentCache.AIVersion)
	assert.Equal(t, 30, cfg.ContentCache.StalenessThresholdDays)
	assert.Equal(t, 5*time.Second, cfg.ContentCache.StorageTimeout)
	assert.Equal(t, 2*time.Minute, cfg.ContentCache.LeaseTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.Logger.SourceLevel)
	assert.Same(t, cfg, Get())
}

func TestLoad_AIEnvironmentVariables(t *testing.T) {
	path := writeConfig(t, "content_cache:\n  ai_version: from-file\n")
	t.Setenv("AI_VERSION", "from-env")
	t.Setenv("AI_STALENESS_THRESHOLD_DAYS", "7")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ContentCache.AIVersion)
	assert.Equal(t, 7, cfg.ContentCache.StalenessThresholdDays)
}

func TestLoad_EnvOverridesMode(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\ncontent_cache:\n  ai_version: v1\n")

	cfg, err := Load("release", path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing ai version", "server:\n  port: 8080\n"},
		{"threshold below one", "content_cache:\n  ai_version: v1\n  staleness_threshold_days: 0\n"},
		{"unknown driver", "database:\n  driver: oracle\ncontent_cache:\n  ai_version: v1\n"},
		{"rate limit without requests", "rate_limit:\n  requests: 0\ncontent_cache:\n  ai_version: v1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
