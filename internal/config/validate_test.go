// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{TMDB: TMDBConfig{APIKey: "test-key"}}
	cfg.applyDefaults()
	return cfg
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.APIKey = ""
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "tmdb.api_key"), "expected api key error, got %v", errs)
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.port"), "expected port error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Server.LogLevel = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_Backend(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Backend = "memcached"
	assert.True(t, containsError(cfg.Validate(), "cache.backend"))

	cfg = validConfig()
	cfg.Cache.Backend = "redis"
	cfg.Redis.Addr = ""
	assert.True(t, containsError(cfg.Validate(), "redis.addr"))

	cfg = validConfig()
	cfg.Database.Path = ""
	assert.True(t, containsError(cfg.Validate(), "database.path"))
}

func TestValidate_CacheBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.MaxItems = -1
	cfg.Cache.MaxBytes = -1
	cfg.Cache.TTL = map[string]time.Duration{"trending": 0, "genres": time.Hour}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "cache.max_items"))
	assert.True(t, containsError(errs, "cache.max_bytes"))
	assert.True(t, containsError(errs, "cache.ttl.trending"))
	assert.False(t, containsError(errs, "cache.ttl.genres"))
}

func TestValidate_URLs(t *testing.T) {
	cfg := validConfig()
	cfg.TMDB.BaseURL = "api.themoviedb.org"
	cfg.Connectivity.ProbeURL = "ftp://example.com"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "tmdb.base_url"))
	assert.True(t, containsError(errs, "connectivity.probe_url"))
}

func TestValidate_ProbeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Connectivity.Interval = time.Second
	cfg.Connectivity.Timeout = 5 * time.Second
	assert.True(t, containsError(cfg.Validate(), "connectivity.timeout"))
}

func TestValidate_AI(t *testing.T) {
	cfg := validConfig()
	cfg.AI.Enabled = true
	cfg.AI.Provider = "openai"
	assert.True(t, containsError(cfg.Validate(), "ai.provider"))

	cfg.AI.Provider = "anthropic"
	assert.True(t, containsError(cfg.Validate(), "ai.anthropic.api_key"))

	cfg.AI.Anthropic.APIKey = "sk-test"
	assert.Empty(t, cfg.Validate())

	cfg.AI.Enabled = false
	cfg.AI.Provider = "openai"
	assert.Empty(t, cfg.Validate(), "disabled ai is not validated")
}
