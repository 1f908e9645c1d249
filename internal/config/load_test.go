// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 8080

[tmdb]
api_key = "abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "abc", cfg.TMDB.APIKey)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "${MARQUEE_TEST_MISSING_KEY}"
`)

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"MARQUEE_TEST_MISSING_KEY"}, cfgErr.Missing)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999

[tmdb]
api_key = "abc"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8484", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, 500, cfg.Cache.MaxItems)
	assert.Equal(t, int64(50<<20), cfg.Cache.MaxBytes)
	assert.Equal(t, 30*time.Second, cfg.Connectivity.Interval)
	assert.Equal(t, uint32(5), cfg.Breaker.MaxFailures)
	assert.Equal(t, int64(1000), cfg.Entity.HotRecords)
	assert.Equal(t, "llama3.1", cfg.AI.Ollama.Model)
}

func TestLoad_Durations(t *testing.T) {
	path := writeConfig(t, `
[cache]
sweep_interval = "90s"

[cache.ttl]
movies_popular = "6h"
trending = "30m"

[tmdb]
api_key = "abc"
timeout = "3s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Cache.SweepInterval)
	assert.Equal(t, 6*time.Hour, cfg.Cache.TTL["movies_popular"])
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL["trending"])
	assert.Equal(t, 3*time.Second, cfg.TMDB.Timeout)
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("MARQUEE_TMDB_API_KEY", "from-env")
	t.Setenv("MARQUEE_SERVER_PORT", "9090")
	t.Setenv("MARQUEE_CACHE_BACKEND", "redis")
	t.Setenv("MARQUEE_REDIS_ADDR", "cache:6379")
	t.Setenv("MARQUEE_BREAKER_OPEN_TIMEOUT", "2m")
	t.Setenv("MARQUEE_AI_ANTHROPIC_MODEL", "claude-test")

	path := writeConfig(t, `
[server]
port = 8080

[tmdb]
api_key = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Breaker.OpenTimeout)
	assert.Equal(t, "claude-test", cfg.AI.Anthropic.Model)
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
}

func TestLoad_EnvVarDefault(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "${MARQUEE_TEST_OPTIONAL_HOST:-localhost}"

[tmdb]
api_key = "abc"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[server\nport = 1")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}
