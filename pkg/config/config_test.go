package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
database:
  driver: memory
cache:
  max_size: 250
  sweep_interval: 30s
log:
  level: debug
jwt:
  secret: from-file
`

func TestParse_DefaultsAndFile(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 250, cfg.Cache.MaxSize)
	assert.Equal(t, 30*time.Second, cfg.Cache.SweepInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("CACHE_MAX_SIZE", "10")
	t.Setenv("CACHE_COALESCE", "true")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Cache.MaxSize)
	assert.True(t, cfg.Cache.Coalesce)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestParse_InvalidEnv(t *testing.T) {
	t.Setenv("CACHE_SWEEP_INTERVAL", "soon")
	_, err := Parse([]byte(sampleYAML))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")

	_, err := Parse([]byte("database:\n  driver: mysql\njwt:\n  secret: s\n"))
	require.ErrorContains(t, err, "DB_DSN")

	_, err = Parse([]byte("database:\n  driver: mongo\njwt:\n  secret: s\n"))
	require.ErrorContains(t, err, "unsupported")

	_, err = Parse([]byte("database:\n  driver: memory\n"))
	require.ErrorContains(t, err, "JWT_SECRET")

	_, err = Parse([]byte("server:\n  mode: staging\ndatabase:\n  driver: memory\njwt:\n  secret: s\n"))
	require.ErrorContains(t, err, "server mode")

	_, err = Parse([]byte("rate_limit:\n  requests_per_minute: -5\ndatabase:\n  driver: memory\njwt:\n  secret: s\n"))
	require.ErrorContains(t, err, "requests_per_minute")

	_, err = Parse([]byte("rate_limit:\n  burst: -1\ndatabase:\n  driver: memory\njwt:\n  secret: s\n"))
	require.ErrorContains(t, err, "burst")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
