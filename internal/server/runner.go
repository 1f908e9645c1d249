// Package server runs the long-lived components of the service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// Config for the runner.
type Config struct {
	Addr            string
	SweepInterval   time.Duration // <= 0 disables background sweeping
	ShutdownTimeout time.Duration
}

// Monitor keeps the connectivity gate current until ctx is canceled.
type Monitor interface {
	Run(ctx context.Context) error
}

// Sweeper removes expired cache entries.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Runner manages the connectivity monitor, the cache sweeper and the HTTP server.
type Runner struct {
	config  Config
	handler http.Handler
	monitor Monitor
	sweeper Sweeper
	logger  *slog.Logger
}

// NewRunner creates a new runner. monitor and sweeper may be nil.
func NewRunner(cfg Config, handler http.Handler, monitor Monitor, sweeper Sweeper, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		config:  cfg,
		handler: handler,
		monitor: monitor,
		sweeper: sweeper,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled
// or a component fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs every component on ln. It blocks until the context is
// canceled or an error occurs; cancellation is not an error.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	if r.monitor != nil {
		g.Go(func() error {
			return r.monitor.Run(ctx)
		})
	}

	if r.sweeper != nil && r.config.SweepInterval > 0 {
		g.Go(func() error {
			r.sweepLoop(ctx)
			return nil
		})
	}

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.ShutdownTimeout)
		defer cancel()
		r.logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (r *Runner) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(r.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.sweeper.Sweep(ctx)
			if err != nil && ctx.Err() == nil {
				r.logger.Warn("cache sweep failed", "error", err)
				continue
			}
			if n > 0 {
				r.logger.Info("cache sweep", "removed", n)
			}
		}
	}
}
