package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG writes a blank PNG with the given pixel dimensions.
func writeTestPNG(t *testing.T, path string, width, height int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

// writeTestConfig writes a configuration file with one instrument pointing
// at scoresDir and returns the config path.
func writeTestConfig(t *testing.T, dir, scoresDir string) string {
	t.Helper()

	path := filepath.Join(dir, "booklet.yaml")
	content := fmt.Sprintf("instruments:\n  - key: bb\n    title: \"Bb Real Book\"\n    dir: %q\n", scoresDir)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// TestNewBuildCmd tests the build command creation.
func TestNewBuildCmd(t *testing.T) {
	t.Parallel()

	cmd := NewBuildCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "build [instrument...]" {
			t.Errorf("expected use 'build [instrument...]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("has report flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("report")
		if flag == nil {
			t.Fatal("expected report flag")
		}
		if flag.Shorthand != "r" {
			t.Errorf("expected shorthand 'r', got %q", flag.Shorthand)
		}
	})

	t.Run("has data-dir flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("data-dir") == nil {
			t.Error("expected data-dir flag")
		}
	})

	t.Run("has jobs flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("jobs")
		if flag == nil {
			t.Fatal("expected jobs flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("has full flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("full")
		if flag == nil {
			t.Fatal("expected full flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})
}

// TestBuildConfig tests flag overrides on top of the configuration file.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestConfig(t, t.TempDir(), "/scores/bb")

		cmd := NewBuildCmd()
		flags := map[string]string{
			"config":   cfgPath,
			"output":   "/tmp/booklets",
			"report":   "/tmp/report.md",
			"data-dir": "/tmp/data",
			"jobs":     "2",
		}
		for name, value := range flags {
			if err := cmd.Flags().Set(name, value); err != nil {
				t.Fatalf("failed to set flag %s: %v", name, err)
			}
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputDir != "/tmp/booklets" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/booklets")
		}
		if cfg.ReportFile != "/tmp/report.md" {
			t.Errorf("ReportFile = %q, want %q", cfg.ReportFile, "/tmp/report.md")
		}
		if cfg.DataDir != "/tmp/data" {
			t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/data")
		}
		if cfg.Concurrency != 2 {
			t.Errorf("Concurrency = %d, want 2", cfg.Concurrency)
		}
	})

	t.Run("config file values kept without overrides", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestConfig(t, t.TempDir(), "/scores/bb")

		cmd := NewBuildCmd()
		if err := cmd.Flags().Set("config", cfgPath); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.Instruments) != 1 || cfg.Instruments[0].Key != "bb" {
			t.Errorf("unexpected instruments: %+v", cfg.Instruments)
		}
		if cfg.OutputDir == "" {
			t.Error("expected default output directory")
		}
		if cfg.Concurrency <= 0 {
			t.Errorf("Concurrency = %d, want > 0", cfg.Concurrency)
		}
	})
}

// TestBuildCommand builds a small catalog end to end and checks the
// rendered PDF and the Markdown report.
func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	scoresDir := filepath.Join(dir, "scores")
	if err := os.MkdirAll(scoresDir, 0750); err != nil {
		t.Fatalf("failed to create scores dir: %v", err)
	}
	writeTestPNG(t, filepath.Join(scoresDir, "Misty.png"), 600, 800)
	writeTestPNG(t, filepath.Join(scoresDir, "Naima.png"), 600, 800)

	cfgPath := writeTestConfig(t, dir, scoresDir)
	outDir := filepath.Join(dir, "out")
	reportPath := filepath.Join(dir, "report.md")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"build",
		"--config", cfgPath,
		"--output", outDir,
		"--data-dir", filepath.Join(dir, "data"),
		"--report", reportPath,
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pdf, err := os.ReadFile(filepath.Join(outDir, "bb.pdf"))
	if err != nil {
		t.Fatalf("expected booklet PDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}

	reportText, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	for _, want := range []string{"Booklet Build Report", "bb", "Bb Real Book"} {
		if !strings.Contains(string(reportText), want) {
			t.Errorf("report missing %q", want)
		}
	}
}

// TestBuildCommand_EmptyCatalog checks that an instrument with no readable
// images fails the build without creating a PDF.
func TestBuildCommand_EmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	scoresDir := filepath.Join(dir, "scores")
	if err := os.MkdirAll(scoresDir, 0750); err != nil {
		t.Fatalf("failed to create scores dir: %v", err)
	}

	cfgPath := writeTestConfig(t, dir, scoresDir)
	outDir := filepath.Join(dir, "out")

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"build",
		"--config", cfgPath,
		"--output", outDir,
		"--data-dir", filepath.Join(dir, "data"),
	})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if !strings.Contains(err.Error(), "instrument builds failed") {
		t.Errorf("unexpected error: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(outDir, "bb.pdf")); !os.IsNotExist(statErr) {
		t.Error("expected no PDF for failed instrument")
	}
}

// TestBuildCommand_PartialFailure checks that one broken instrument does not
// fail the run: the healthy booklet is still produced and the exit is clean.
func TestBuildCommand_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	goodDir := filepath.Join(dir, "good")
	emptyDir := filepath.Join(dir, "empty")
	for _, d := range []string{goodDir, emptyDir} {
		if err := os.MkdirAll(d, 0750); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
	writeTestPNG(t, filepath.Join(goodDir, "Misty.png"), 600, 800)

	cfgPath := filepath.Join(dir, "booklet.yaml")
	content := fmt.Sprintf(
		"instruments:\n  - key: bb\n    dir: %q\n  - key: eb\n    dir: %q\n",
		goodDir, emptyDir,
	)
	if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"build",
		"--config", cfgPath,
		"--output", outDir,
		"--data-dir", filepath.Join(dir, "data"),
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "bb.pdf")); err != nil {
		t.Errorf("expected booklet for healthy instrument: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "eb.pdf")); !os.IsNotExist(err) {
		t.Error("expected no booklet for failed instrument")
	}
}

// TestBuildCommand_UnknownInstrument checks argument validation against the
// configured instruments.
func TestBuildCommand_UnknownInstrument(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir, filepath.Join(dir, "scores"))

	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build", "tuba", "--config", cfgPath, "--data-dir", filepath.Join(dir, "data")})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for unknown instrument")
	}
	if !strings.Contains(err.Error(), "unknown instrument") {
		t.Errorf("unexpected error: %v", err)
	}
}
