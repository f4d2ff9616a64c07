// Package main provides the entry point for the booklet CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pauljohnleonard/booklet/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for booklet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklet",
		Short: "Pack sheet-music catalogs into print-ready PDF booklets",
		Long: `booklet packs catalogs of sheet-music images into PDF booklets, one per
instrument. Pages are filled to minimize the page count, and every booklet
opens with an alphabetical index that links each tune to its page.

Record a published booklet with "booklet snapshot" and later builds will
keep every published tune on its page, packing new tunes into an appendix
at the end instead of reflowing the booklet.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewSnapshotCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// loadConfig resolves and loads the configuration file shared by the
// subcommands, applying the --data-dir flag override.
//
// If the user explicitly named a config file, a missing file is an error.
// Without an explicit path the defaults are used when no file is found.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicit := configFlag != ""
	configPath := config.FindConfigFile(configFlag)

	var cfg *config.Config
	switch {
	case configPath != "":
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	case explicit:
		return nil, fmt.Errorf("configuration file not found: %s", configFlag)
	default:
		cfg = config.NewConfig()
	}

	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

// selectInstruments resolves positional arguments to configured instruments.
// With no arguments every configured instrument is selected.
func selectInstruments(cfg *config.Config, args []string) ([]config.Instrument, error) {
	if len(args) == 0 {
		return cfg.Instruments, nil
	}

	byKey := make(map[string]config.Instrument, len(cfg.Instruments))
	for _, in := range cfg.Instruments {
		byKey[in.Key] = in
	}

	selected := make([]config.Instrument, 0, len(args))
	for _, key := range args {
		in, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf("unknown instrument %q", key)
		}
		selected = append(selected, in)
	}
	return selected, nil
}
