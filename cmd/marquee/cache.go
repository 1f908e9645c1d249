package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/cache"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show response cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired cache entries",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every response cache entry",
	Long:  "Remove every response cache entry. Entity records are kept.",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(statsCmd, sweepCmd, clearCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStorage(cmd.Context(), cfg, newLogger(cfg.Server.LogLevel))
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.cache.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if jsonOutput {
		return printJSON(stats)
	}
	printStats(stats)
	return nil
}

func printStats(s cache.Stats) {
	fmt.Printf("Entries:  %d\n", s.Count)
	fmt.Printf("Size:     %s\n", formatSize(s.TotalBytes))
	if s.Count == 0 {
		return
	}
	fmt.Printf("Oldest:   %s\n", s.Oldest.Format(time.RFC3339))
	fmt.Printf("Newest:   %s\n", s.Newest.Format(time.RFC3339))
	fmt.Println()

	kinds := make([]string, 0, len(s.CountByKind))
	for k := range s.CountByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-28s %d\n", k, s.CountByKind[cache.Kind(k)])
	}
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStorage(cmd.Context(), cfg, newLogger(cfg.Server.LogLevel))
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.cache.Sweep(cmd.Context())
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	fmt.Printf("Removed %d expired entries\n", n)
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStorage(cmd.Context(), cfg, newLogger(cfg.Server.LogLevel))
	if err != nil {
		return err
	}
	defer st.Close()

	n := st.cache.Len()
	if err := st.cache.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	fmt.Printf("Cleared %d entries\n", n)
	return nil
}
