package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pauljohnleonard/booklet"
	"github.com/pauljohnleonard/booklet/baseline"
	"github.com/pauljohnleonard/booklet/catalog"
	"github.com/pauljohnleonard/booklet/internal/config"
	"github.com/pauljohnleonard/booklet/internal/report"
	"github.com/pauljohnleonard/booklet/render"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [instrument...]",
		Short: "Assemble and render PDF booklets for the configured instruments",
		Long: `Build reads each instrument catalog named in the configuration file,
packs its images into pages, prepends an alphabetical index, and renders
one PDF per instrument into the output directory.

When a baseline has been recorded (see "booklet snapshot"), images in the
baseline keep their page numbers and newly added images are packed into
an appendix section at the end of the booklet.

With no arguments every configured instrument is built; otherwise only
the named instruments are.`,
		RunE: runBuildCmd,
	}

	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: .booklet.yaml)")
	cmd.Flags().StringP("output", "o", "", "Output directory for rendered PDFs")
	cmd.Flags().StringP("report", "r", "", "Write a Markdown build report to this file")
	cmd.Flags().String("data-dir", "", "Directory holding the baseline database")
	cmd.Flags().IntP("jobs", "j", 0, "Number of instruments to build concurrently")
	cmd.Flags().Bool("full", false, "Ignore recorded baselines and repack from scratch")

	return cmd
}

// runBuildCmd executes the build command.
func runBuildCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd) || cfg.Verbose
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return err
	}

	instruments, err := selectInstruments(cfg, args)
	if err != nil {
		return err
	}

	return runBuild(ctx, cfg, instruments, !full, verbose, logger)
}

// buildConfig loads the configuration file and applies flag overrides.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.OutputDir = output
	}

	reportFile, err := cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}
	if reportFile != "" {
		cfg.ReportFile = reportFile
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	if jobs > 0 {
		cfg.Concurrency = jobs
	}

	return cfg, nil
}

// runBuild assembles and renders every selected instrument concurrently,
// then prints the build report. Instruments fail independently; the error
// return indicates cancellation or that every instrument failed.
func runBuild(ctx context.Context, cfg *config.Config, instruments []config.Instrument, useBaseline, verbose bool, logger *slog.Logger) error {
	logger.Info("starting build",
		"instruments", len(instruments),
		"outputDir", cfg.OutputDir,
		"concurrency", cfg.Concurrency,
	)

	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var store *baseline.Store
	if useBaseline {
		var err error
		store, err = baseline.Open(cfg.DataDir, baseline.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open baseline store: %w", err)
		}
		defer store.Close()
		logger.Debug("baseline store opened", "path", store.Path())
	}

	// Pre-allocate results to keep report order stable regardless of
	// completion order.
	results := make([]report.InstrumentResult, len(instruments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, in := range instruments {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = buildInstrument(gctx, cfg, in, store, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("build cancelled: %w", err)
	}

	buildReport := report.NewBuildReport(cfg.OutputDir)
	for _, result := range results {
		buildReport.Add(result)
	}

	if err := writeReports(buildReport, cfg, verbose); err != nil {
		return err
	}

	// Partial failures are visible in the report; successful booklets were
	// still produced. Only a fully failed run exits non-zero.
	if failed := buildReport.Failed(); failed == len(instruments) {
		return fmt.Errorf("all %d instrument builds failed", failed)
	}
	return nil
}

// buildInstrument assembles and renders one instrument booklet. Failures are
// recorded in the result rather than returned so one broken catalog does not
// stop the other instruments.
func buildInstrument(ctx context.Context, cfg *config.Config, in config.Instrument, store *baseline.Store, logger *slog.Logger) report.InstrumentResult {
	start := time.Now()
	result := report.InstrumentResult{
		Instrument: in.Key,
		Title:      in.DisplayTitle(),
	}

	logger.Debug("building instrument", "instrument", in.Key, "dir", in.Dir)

	catalogConfig := catalog.Config{TitleSuffix: in.TitleSuffix}
	if in.LinksFile != "" {
		links, err := catalog.LoadLinks(in.LinksFile)
		if err != nil {
			result.Error = fmt.Sprintf("failed to load links file: %v", err)
			return result
		}
		catalogConfig.Links = links
	}

	assembler := booklet.FromDirectory(in.Key, in.DisplayTitle(), in.Dir).
		WithCatalog(catalogConfig).
		WithLayout(cfg.LayoutConfig()).
		WithIndex(cfg.IndexConfig()).
		WithMeasurer(render.NewFontMetrics(cfg.BodyFont))

	if store != nil {
		snapshot, err := store.Load(ctx, in.Key)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		if snapshot != nil {
			assembler = assembler.WithBaseline(snapshot)
			logger.Debug("baseline loaded", "instrument", in.Key, "images", snapshot.Len())
		}
	}

	b, warnings, err := assembler.Assemble()
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.Identifier+": "+w.Message)
		logger.Warn("skipped image",
			"instrument", in.Key,
			"identifier", w.Identifier,
			"reason", w.Message,
		)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	outputFile := filepath.Join(cfg.OutputDir, in.Key+".pdf")
	if err := render.NewPDFWithConfig(cfg.RenderConfig()).RenderFile(b, outputFile); err != nil {
		result.Error = err.Error()
		return result
	}

	result.OutputFile = outputFile
	result.IndexPages = len(b.IndexPages)
	result.ImagePages = len(b.ImagePages)
	result.AppendixPages = b.AppendixPages
	result.Images = b.ImageCount()
	result.Scale = b.Scale
	result.Duration = time.Since(start)

	logger.Info("booklet rendered",
		"instrument", in.Key,
		"pages", b.PageCount(),
		"images", b.ImageCount(),
		"output", outputFile,
	)
	return result
}

// writeReports prints the build summary to stdout and, when configured,
// writes a Markdown report file.
func writeReports(buildReport *report.BuildReport, cfg *config.Config, verbose bool) error {
	writers := []report.Writer{
		report.NewSimpleWriter(os.Stdout, report.WithVerbose(verbose)),
	}

	if cfg.ReportFile != "" {
		f, err := os.Create(cfg.ReportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		writers = append(writers, report.NewMarkdownWriter(f))
	}

	if _, err := report.NewMultiWriter(writers...).Write(buildReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
