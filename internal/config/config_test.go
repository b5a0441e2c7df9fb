package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/calculator"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, devSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, calculator.RemainderToPayer, cfg.RemainderPolicy())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
database:
  path: /var/lib/dormshare/db.sqlite
auth:
  jwtSecret: from-file
ledger:
  remainderPolicy: first
`), 0o600))

	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/var/lib/dormshare/db.sqlite", cfg.Database.Path)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, calculator.RemainderToFirst, cfg.RemainderPolicy())
}

func TestLoadRejects(t *testing.T) {
	t.Run("unknown remainder policy", func(t *testing.T) {
		t.Setenv("LEDGER_REMAINDER_POLICY", "random")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("production without secret", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		_, err := Load("")
		assert.Error(t, err)
	})
}
