package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vmunix/marquee/internal/ai"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/connectivity"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
	"github.com/vmunix/marquee/internal/kv"
	"github.com/vmunix/marquee/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// loadConfig resolves the --config flag or discovers the config file.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.Discover()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ttlOverrides converts configured TTLs to cache kinds.
func ttlOverrides(ttls map[string]time.Duration) map[cache.Kind]time.Duration {
	out := make(map[cache.Kind]time.Duration, len(ttls))
	for k, v := range ttls {
		out[cache.Kind(k)] = v
	}
	return out
}

func openBackend(ctx context.Context, cfg *config.Config) (kv.Backend, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return kv.OpenRedis(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		return kv.OpenSQLite(cfg.Database.Path)
	}
}

// storage is the local state shared by every command.
type storage struct {
	backend  kv.Backend
	cache    *cache.Store
	entities *entity.Store
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Cache.Backend, err)
	}

	store, err := cache.Open(ctx, backend,
		cache.WithPrefix(cfg.Cache.Prefix),
		cache.WithMaxItems(cfg.Cache.MaxItems),
		cache.WithMaxBytes(cfg.Cache.MaxBytes),
		cache.WithPolicy(cache.DefaultPolicy().WithOverrides(ttlOverrides(cfg.Cache.TTL))),
		cache.WithLogger(logger.With("component", "cache")),
	)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	entities, err := entity.New(backend,
		entity.WithHotRecords(cfg.Entity.HotRecords),
		entity.WithLogger(logger.With("component", "entity")),
	)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("open entity store: %w", err)
	}

	return &storage{backend: backend, cache: store, entities: entities}, nil
}

func (s *storage) Close() error {
	_ = s.entities.Close()
	_ = s.cache.Close()
	return s.backend.Close()
}

// app wires the full online-first stack on top of storage.
type app struct {
	*storage
	gate       *connectivity.Gate
	monitor    *connectivity.Monitor
	dispatcher *dispatch.Dispatcher
	catalog    *catalog.Service
}

func newInsightsProvider(cfg config.AIConfig) ai.Provider {
	switch cfg.Provider {
	case "anthropic":
		return ai.NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Timeout)
	default:
		return ai.NewOllamaProvider(cfg.Ollama.URL, cfg.Ollama.Model, cfg.Timeout)
	}
}

func openApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	gate := connectivity.NewGate(logger.With("component", "connectivity"))
	probe := connectivity.NewHTTPProbe(cfg.Connectivity.ProbeURL, cfg.Connectivity.Timeout)
	monitor := connectivity.NewMonitor(gate, probe, cfg.Connectivity.Interval, logger.With("component", "connectivity"))

	d := dispatch.New(gate, st.cache,
		dispatch.WithBreaker(cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout),
		dispatch.WithPermanentErrors(func(err error) bool { return errors.Is(err, tmdb.ErrNotFound) }),
		dispatch.WithLogger(logger.With("component", "dispatch")),
	)

	client := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithRegion(cfg.TMDB.Region),
	)

	opts := []catalog.Option{
		catalog.WithRegion(cfg.TMDB.Region),
		catalog.WithLogger(logger.With("component", "catalog")),
	}
	if cfg.AI.Enabled {
		gen := ai.NewGenerator(newInsightsProvider(cfg.AI), logger.With("component", "ai"))
		opts = append(opts, catalog.WithInsights(gen))
	}
	svc := catalog.NewService(client, d, st.entities, opts...)

	return &app{storage: st, gate: gate, monitor: monitor, dispatcher: d, catalog: svc}, nil
}
