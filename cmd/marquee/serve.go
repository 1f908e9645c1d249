package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API with the connectivity monitor and the background
cache sweeper. Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	api, err := v1.New(v1.ServerDeps{
		Catalog:    a.catalog,
		Cache:      a.cache,
		Dispatcher: a.dispatcher,
		Logger:     logger.With("component", "api"),
	})
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	logger.Info("server starting",
		"addr", cfg.Server.Addr(),
		"backend", cfg.Cache.Backend,
		"ai", cfg.AI.Enabled,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(server.Config{
		Addr:          cfg.Server.Addr(),
		SweepInterval: cfg.Cache.SweepInterval,
	}, api.Handler(), a.monitor, a.cache, logger.With("component", "server"))

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
