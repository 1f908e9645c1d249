// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. MARQUEE_TMDB_API_KEY.
const EnvPrefix = "MARQUEE_"

// Config is the root configuration structure.
type Config struct {
	Server       ServerConfig       `toml:"server" envPrefix:"SERVER_"`
	Database     DatabaseConfig     `toml:"database" envPrefix:"DATABASE_"`
	Cache        CacheConfig        `toml:"cache" envPrefix:"CACHE_"`
	Redis        RedisConfig        `toml:"redis" envPrefix:"REDIS_"`
	Connectivity ConnectivityConfig `toml:"connectivity" envPrefix:"CONNECTIVITY_"`
	TMDB         TMDBConfig         `toml:"tmdb" envPrefix:"TMDB_"`
	Breaker      BreakerConfig      `toml:"breaker" envPrefix:"BREAKER_"`
	Entity       EntityConfig       `toml:"entity" envPrefix:"ENTITY_"`
	AI           AIConfig           `toml:"ai" envPrefix:"AI_"`
}

type ServerConfig struct {
	Host     string `toml:"host" env:"HOST"`
	Port     int    `toml:"port" env:"PORT"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Path string `toml:"path" env:"PATH"`
}

// CacheConfig configures the response cache. TTL overrides the built-in
// per-kind lifetimes, keyed by kind name such as "movies_popular".
type CacheConfig struct {
	Backend       string                   `toml:"backend" env:"BACKEND"` // sqlite or redis
	Prefix        string                   `toml:"prefix" env:"PREFIX"`
	MaxItems      int                      `toml:"max_items" env:"MAX_ITEMS"`
	MaxBytes      int64                    `toml:"max_bytes" env:"MAX_BYTES"`
	SweepInterval time.Duration            `toml:"sweep_interval" env:"SWEEP_INTERVAL"`
	TTL           map[string]time.Duration `toml:"ttl"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

type ConnectivityConfig struct {
	ProbeURL string        `toml:"probe_url" env:"PROBE_URL"`
	Interval time.Duration `toml:"interval" env:"INTERVAL"`
	Timeout  time.Duration `toml:"timeout" env:"TIMEOUT"`
}

type TMDBConfig struct {
	APIKey   string        `toml:"api_key" env:"API_KEY"`
	BaseURL  string        `toml:"base_url" env:"BASE_URL"`
	Language string        `toml:"language" env:"LANGUAGE"`
	Region   string        `toml:"region" env:"REGION"`
	Timeout  time.Duration `toml:"timeout" env:"TIMEOUT"`
}

type BreakerConfig struct {
	MaxFailures uint32        `toml:"max_failures" env:"MAX_FAILURES"`
	OpenTimeout time.Duration `toml:"open_timeout" env:"OPEN_TIMEOUT"`
}

type EntityConfig struct {
	HotRecords int64 `toml:"hot_records" env:"HOT_RECORDS"`
}

type AIConfig struct {
	Enabled   bool            `toml:"enabled" env:"ENABLED"`
	Provider  string          `toml:"provider" env:"PROVIDER"`
	Timeout   time.Duration   `toml:"timeout" env:"TIMEOUT"`
	Ollama    OllamaConfig    `toml:"ollama" envPrefix:"OLLAMA_"`
	Anthropic AnthropicConfig `toml:"anthropic" envPrefix:"ANTHROPIC_"`
}

type OllamaConfig struct {
	URL   string `toml:"url" env:"URL"`
	Model string `toml:"model" env:"MODEL"`
}

type AnthropicConfig struct {
	APIKey string `toml:"api_key" env:"API_KEY"`
	Model  string `toml:"model" env:"MODEL"`
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applies
// MARQUEE_* environment overrides and defaults, and skips validation.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.Host, "0.0.0.0")
	setDefault(&c.Server.Port, 8484)
	setDefault(&c.Server.LogLevel, "info")
	setDefault(&c.Database.Path, "./data/marquee.db")

	setDefault(&c.Cache.Backend, "sqlite")
	setDefault(&c.Cache.Prefix, "marquee_cache_")
	setDefault(&c.Cache.MaxItems, 500)
	setDefault(&c.Cache.MaxBytes, 50<<20)
	setDefault(&c.Cache.SweepInterval, 30*time.Second)
	setDefault(&c.Redis.Addr, "localhost:6379")

	setDefault(&c.Connectivity.ProbeURL, "https://api.themoviedb.org")
	setDefault(&c.Connectivity.Interval, 30*time.Second)
	setDefault(&c.Connectivity.Timeout, 5*time.Second)

	setDefault(&c.TMDB.BaseURL, "https://api.themoviedb.org")
	setDefault(&c.TMDB.Language, "en-US")
	setDefault(&c.TMDB.Timeout, 10*time.Second)

	setDefault(&c.Breaker.MaxFailures, 5)
	setDefault(&c.Breaker.OpenTimeout, 30*time.Second)
	setDefault(&c.Entity.HotRecords, 1000)

	setDefault(&c.AI.Provider, "ollama")
	setDefault(&c.AI.Timeout, 60*time.Second)
	setDefault(&c.AI.Ollama.URL, "http://localhost:11434")
	setDefault(&c.AI.Ollama.Model, "llama3.1")
	setDefault(&c.AI.Anthropic.Model, "claude-3-5-haiku-latest")
}

func setDefault[T comparable](field *T, def T) {
	var zero T
	if *field == zero {
		*field = def
	}
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:[-?])([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// Unresolved references are left in place and reported in missing; a
// ${VAR:?message} reference reports "VAR: message".
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
