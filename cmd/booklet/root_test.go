package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pauljohnleonard/booklet/internal/config"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "booklet" {
			t.Errorf("expected use 'booklet', got %q", cmd.Use)
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

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		hasBuild := false
		hasSnapshot := false
		hasVersion := false
		for _, sub := range cmd.Commands() {
			switch sub.Use {
			case "build [instrument...]":
				hasBuild = true
			case "snapshot [instrument...]":
				hasSnapshot = true
			case "version":
				hasVersion = true
			}
		}
		if !hasBuild {
			t.Error("expected build subcommand")
		}
		if !hasSnapshot {
			t.Error("expected snapshot subcommand")
		}
		if !hasVersion {
			t.Error("expected version subcommand")
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestSetupLogger tests logger verbosity levels.
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(true)
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("expected debug level to be enabled when verbose")
		}
	})

	t.Run("quiet logs warnings only", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(false)
		if logger.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("expected info level to be disabled when not verbose")
		}
		if !logger.Enabled(context.Background(), slog.LevelWarn) {
			t.Error("expected warn level to be enabled")
		}
	})
}

// TestLoadConfig tests config file resolution and the data-dir override.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads explicit config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "booklet.yaml")
		content := "margin: 15\ninstruments:\n  - key: bb\n    dir: /scores/bb\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewSnapshotCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Margin != 15 {
			t.Errorf("Margin = %v, want 15", cfg.Margin)
		}
		if len(cfg.Instruments) != 1 || cfg.Instruments[0].Key != "bb" {
			t.Errorf("unexpected instruments: %+v", cfg.Instruments)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewSnapshotCmd()
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		if _, err := loadConfig(cmd); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("data-dir flag overrides config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "booklet.yaml")
		if err := os.WriteFile(path, []byte("dataDir: /from/file\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewSnapshotCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if err := cmd.Flags().Set("data-dir", "/from/flag"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DataDir != "/from/flag" {
			t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/from/flag")
		}
	})
}

// TestSelectInstruments tests positional argument resolution.
func TestSelectInstruments(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Instruments = []config.Instrument{
		{Key: "bb", Dir: "/scores/bb"},
		{Key: "concert", Dir: "/scores/concert"},
		{Key: "eb", Dir: "/scores/eb"},
	}

	tests := []struct {
		name     string
		args     []string
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "no arguments selects all",
			args:     nil,
			wantKeys: []string{"bb", "concert", "eb"},
		},
		{
			name:     "named subset in argument order",
			args:     []string{"eb", "bb"},
			wantKeys: []string{"eb", "bb"},
		},
		{
			name:    "unknown instrument",
			args:    []string{"tuba"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			selected, err := selectInstruments(cfg, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(selected) != len(tt.wantKeys) {
				t.Fatalf("selected %d instruments, want %d", len(selected), len(tt.wantKeys))
			}
			for i, key := range tt.wantKeys {
				if selected[i].Key != key {
					t.Errorf("selected[%d].Key = %q, want %q", i, selected[i].Key, key)
				}
			}
		})
	}
}
