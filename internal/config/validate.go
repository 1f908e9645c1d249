// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validBackends = map[string]bool{
	"sqlite": true, "redis": true,
}

var validAIProviders = map[string]bool{
	"ollama": true, "anthropic": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Storage validation
	if !validBackends[c.Cache.Backend] {
		errs = append(errs, fmt.Sprintf("cache.backend: must be one of sqlite, redis; got %q", c.Cache.Backend))
	}
	if c.Cache.Backend == "sqlite" && c.Database.Path == "" {
		errs = append(errs, "database.path: required for the sqlite backend")
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		errs = append(errs, "redis.addr: required for the redis backend")
	}
	if c.Cache.MaxItems < 0 {
		errs = append(errs, fmt.Sprintf("cache.max_items: must not be negative, got %d", c.Cache.MaxItems))
	}
	if c.Cache.MaxBytes < 0 {
		errs = append(errs, fmt.Sprintf("cache.max_bytes: must not be negative, got %d", c.Cache.MaxBytes))
	}
	for kind, ttl := range c.Cache.TTL {
		if ttl <= 0 {
			errs = append(errs, fmt.Sprintf("cache.ttl.%s: must be positive, got %s", kind, ttl))
		}
	}

	// Remote validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if !isHTTPURL(c.TMDB.BaseURL) {
		errs = append(errs, fmt.Sprintf("tmdb.base_url: must be an http(s) URL, got %q", c.TMDB.BaseURL))
	}
	if !isHTTPURL(c.Connectivity.ProbeURL) {
		errs = append(errs, fmt.Sprintf("connectivity.probe_url: must be an http(s) URL, got %q", c.Connectivity.ProbeURL))
	}
	if c.Connectivity.Timeout > c.Connectivity.Interval {
		errs = append(errs, fmt.Sprintf("connectivity.timeout: must not exceed interval %s, got %s", c.Connectivity.Interval, c.Connectivity.Timeout))
	}

	// AI validation
	if c.AI.Enabled {
		if !validAIProviders[c.AI.Provider] {
			errs = append(errs, fmt.Sprintf("ai.provider: must be one of ollama, anthropic; got %q", c.AI.Provider))
		}
		if c.AI.Provider == "anthropic" && c.AI.Anthropic.APIKey == "" {
			errs = append(errs, "ai.anthropic.api_key: required when provider is anthropic")
		}
	}

	return errs
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
