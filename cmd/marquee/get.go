package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
)

var getCmd = &cobra.Command{
	Use:   "get <movie|tv> <id>",
	Short: "Fetch title details online-first",
	Long: `Fetch title details, probing connectivity first. When offline or the
remote fetch fails, cached data is shown instead.

Examples:
  marquee get movie 550
  marquee get tv 1396 --insights`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var entityCmd = &cobra.Command{
	Use:   "entity <movie|tv> <id>",
	Short: "Show the stored entity record without fetching",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntity,
}

func init() {
	rootCmd.AddCommand(getCmd, entityCmd)
	getCmd.Flags().Bool("insights", false, "Include AI insights")
}

func parseTitleArgs(args []string) (entity.Kind, int64, error) {
	kind, err := entity.ParseKind(strings.ToLower(args[0]))
	if err != nil {
		return "", 0, err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid id: %s", args[1])
	}
	return kind, id, nil
}

func runGet(cmd *cobra.Command, args []string) error {
	kind, id, err := parseTitleArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	a, err := openApp(ctx, cfg, newLogger(cfg.Server.LogLevel))
	if err != nil {
		return err
	}
	defer a.Close()

	a.monitor.Sample(ctx)
	withInsights, _ := cmd.Flags().GetBool("insights")

	var rec *entity.Record
	if withInsights {
		rec, err = a.catalog.Insights(ctx, kind, id)
	} else {
		rec, err = a.catalog.Details(ctx, kind, id)
	}
	if errors.Is(err, dispatch.ErrNoDataAvailable) {
		return fmt.Errorf("%s %d: offline and not cached", kind, id)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(rec)
	}
	if !a.gate.Online() {
		fmt.Println("(offline: showing cached data)")
	}
	printRecord(rec)
	return nil
}

func runEntity(cmd *cobra.Command, args []string) error {
	kind, id, err := parseTitleArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStorage(cmd.Context(), cfg, newLogger(cfg.Server.LogLevel))
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.entities.Get(cmd.Context(), kind, id)
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%s %d: no stored record", kind, id)
	}
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(rec)
	}
	printRecord(rec)
	return nil
}

func printRecord(r *entity.Record) {
	title := r.Title
	if len(r.ReleaseDate) >= 4 {
		title += " (" + r.ReleaseDate[:4] + ")"
	}
	fmt.Printf("%s  [%s %d]\n", title, r.Kind, r.ID)
	if r.Tagline != "" {
		fmt.Printf("  %s\n", r.Tagline)
	}
	fmt.Printf("  Rating:   %.1f (%d votes)\n", r.VoteAverage, r.VoteCount)
	if len(r.GenreNames) > 0 {
		fmt.Printf("  Genres:   %s\n", strings.Join(r.GenreNames, ", "))
	}
	if r.Runtime > 0 {
		fmt.Printf("  Runtime:  %d min\n", r.Runtime)
	}
	if r.Certification != "" {
		fmt.Printf("  Rated:    %s\n", r.Certification)
	}
	for _, c := range r.Crew {
		if c.Job == "Director" || c.Job == "Creator" {
			fmt.Printf("  %-9s %s\n", c.Job+":", c.Name)
		}
	}
	if len(r.Cast) > 0 {
		names := make([]string, 0, 5)
		for i := 0; i < len(r.Cast) && i < 5; i++ {
			names = append(names, r.Cast[i].Name)
		}
		fmt.Printf("  Cast:     %s\n", strings.Join(names, ", "))
	}
	if r.Overview != "" {
		fmt.Printf("\n  %s\n", r.Overview)
	}
	if len(r.Similar) > 0 {
		fmt.Println("\n  Similar:")
		for _, s := range r.Similar {
			fmt.Printf("    - %s (%d)  %s\n", s.Title, s.Year, s.Reason)
		}
	}
	if len(r.Trivia) > 0 {
		fmt.Println("\n  Trivia:")
		for _, t := range r.Trivia {
			fmt.Printf("    - %s\n", t)
		}
	}
}
