package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ROSTER_CONFIG_FILE", "SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "DATABASE_PATH", "PORT",
		"LOG_LEVEL", "LOG_FORMAT", "RESOLVER_MAX_ITERATIONS", "CANCELED_RETENTION_DAYS",
		"CLEANUP_INTERVAL", "CLEANUP_RETRY_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "./roster.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 50, cfg.ResolverMaxIterations)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 5*time.Minute, cfg.CleanupRetryDelay)
	assert.Equal(t, 30, cfg.CanceledRetentionDays)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := []byte(`
database_path: /var/lib/roster.db
port: "8080"
log_format: json
resolver_max_iterations: 20
cleanup_interval: 30m
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("ROSTER_CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/roster.db", cfg.DatabasePath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 20, cfg.ResolverMaxIterations)
	assert.Equal(t, 30*time.Minute, cfg.CleanupInterval)
	assert.Equal(t, 5*time.Minute, cfg.CleanupRetryDelay)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non numeric iterations", env: map[string]string{"RESOLVER_MAX_ITERATIONS": "many"}},
		{name: "zero iterations", env: map[string]string{"RESOLVER_MAX_ITERATIONS": "0"}},
		{name: "bad interval", env: map[string]string{"CLEANUP_INTERVAL": "hourly"}},
		{name: "negative retention", env: map[string]string{"CANCELED_RETENTION_DAYS": "-1"}},
		{name: "zero retention", env: map[string]string{"CANCELED_RETENTION_DAYS": "0"}},
		{name: "missing file", env: map[string]string{"ROSTER_CONFIG_FILE": "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
