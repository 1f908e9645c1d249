package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, environment variable substitution and MARQUEE_* overrides without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigCheck,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Writes the commented default config. With --resolved, writes the loaded config instead, with environment variables substituted and MARQUEE_* overrides applied.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd, configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().Bool("resolved", false, "Write the loaded config with overrides applied")
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		path = p
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(cmd, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(cmd, cfg)
	fmt.Fprintln(cmd.OutOrStdout(), "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	resolved, _ := cmd.Flags().GetBool("resolved")
	if resolved {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Write(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	} else if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printConfigErrors(cmd *cobra.Command, e *config.ConfigError) {
	out := cmd.OutOrStdout()
	if len(e.Missing) > 0 {
		fmt.Fprintln(out, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		fmt.Fprintln(out)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(out, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(out, "  - %s\n", err)
		}
		fmt.Fprintln(out)
	}
}

func printConfigSummary(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintf(out, "  Server:       %s (log: %s)\n", cfg.Server.Addr(), cfg.Server.LogLevel)
	switch cfg.Cache.Backend {
	case "redis":
		fmt.Fprintf(out, "  Storage:      redis %s/%d\n", cfg.Redis.Addr, cfg.Redis.DB)
	default:
		fmt.Fprintf(out, "  Storage:      sqlite %s\n", cfg.Database.Path)
	}
	fmt.Fprintf(out, "  Cache:        %d entries, %s, sweep every %s\n", cfg.Cache.MaxItems, formatSize(cfg.Cache.MaxBytes), cfg.Cache.SweepInterval)
	if len(cfg.Cache.TTL) > 0 {
		fmt.Fprintf(out, "  TTL overrides: %d\n", len(cfg.Cache.TTL))
	}
	fmt.Fprintf(out, "  Connectivity: %s every %s\n", cfg.Connectivity.ProbeURL, cfg.Connectivity.Interval)
	fmt.Fprintf(out, "  Breaker:      %d failures, %s open\n", cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout)
	if cfg.AI.Enabled {
		fmt.Fprintf(out, "  AI:           %s\n", cfg.AI.Provider)
	} else {
		fmt.Fprintln(out, "  AI:           disabled")
	}
}
