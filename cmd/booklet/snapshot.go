package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pauljohnleonard/booklet/baseline"
	"github.com/pauljohnleonard/booklet/catalog"
	"github.com/pauljohnleonard/booklet/internal/config"
	"github.com/spf13/cobra"
)

// NewSnapshotCmd creates the snapshot command.
func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [instrument...]",
		Short: "Record the current catalogs as the published baseline",
		Long: `Snapshot records the images currently present in each instrument catalog
as that instrument's published baseline. Subsequent builds keep the
recorded images on their existing pages and pack newly added images into
an appendix section.

With no arguments every configured instrument is recorded; otherwise only
the named instruments are. Use --list to show the recorded baselines
without changing them.`,
		RunE: runSnapshotCmd,
	}

	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: .booklet.yaml)")
	cmd.Flags().String("data-dir", "", "Directory holding the baseline database")
	cmd.Flags().BoolP("list", "l", false, "List recorded baselines instead of recording")

	return cmd
}

// runSnapshotCmd executes the snapshot command.
func runSnapshotCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose := getVerboseFlag(cmd) || cfg.Verbose
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if list {
		return listSnapshots(cmd.Context(), cfg, cmd.OutOrStdout())
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	instruments, err := selectInstruments(cfg, args)
	if err != nil {
		return err
	}

	return runSnapshot(cmd.Context(), cfg, instruments, logger, cmd.OutOrStdout())
}

// runSnapshot records the current catalog of each selected instrument,
// replacing any previously recorded baseline.
func runSnapshot(ctx context.Context, cfg *config.Config, instruments []config.Instrument, logger *slog.Logger, out io.Writer) error {
	store, err := baseline.Open(cfg.DataDir, baseline.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open baseline store: %w", err)
	}
	defer store.Close()

	for _, in := range instruments {
		identifiers, err := catalog.ScanDir(in.Dir)
		if err != nil {
			return fmt.Errorf("instrument %s: failed to scan %s: %w", in.Key, in.Dir, err)
		}

		if err := store.Replace(ctx, in.Key, identifiers); err != nil {
			return fmt.Errorf("instrument %s: %w", in.Key, err)
		}

		logger.Info("baseline recorded", "instrument", in.Key, "images", len(identifiers))
		fmt.Fprintf(out, "%s: recorded %d images\n", in.Key, len(identifiers))
	}
	return nil
}

// listSnapshots prints the recorded baseline size per instrument.
func listSnapshots(ctx context.Context, cfg *config.Config, out io.Writer) error {
	opts := baseline.DefaultOptions()
	opts.CreateIfNotExists = false

	store, err := baseline.Open(cfg.DataDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open baseline store: %w", err)
	}
	defer store.Close()

	instruments, err := store.Instruments(ctx)
	if err != nil {
		return err
	}
	if len(instruments) == 0 {
		fmt.Fprintln(out, "no baselines recorded")
		return nil
	}

	for _, key := range instruments {
		snapshot, err := store.Load(ctx, key)
		if err != nil {
			return err
		}
		count := 0
		if snapshot != nil {
			count = snapshot.Len()
		}
		fmt.Fprintf(out, "%s: %d images\n", key, count)
	}
	return nil
}
