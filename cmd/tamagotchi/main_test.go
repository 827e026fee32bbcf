package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MRamiBalles/tamagotchi/internal/platform/config"
)

func TestFlagsOverrideInvalidEnvironment(t *testing.T) {
	t.Setenv("PET_UI", "gtk")
	t.Setenv("PET_TICK_INTERVAL", "0s")

	opts, err := loadConfig([]string{"-ui", "plain", "-tick", "1s"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.cfg.UI != config.UIPlain {
		t.Errorf("ui = %q, want plain", opts.cfg.UI)
	}
	if opts.cfg.TickInterval != time.Second {
		t.Errorf("tick = %s, want 1s", opts.cfg.TickInterval)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PET_JOURNAL_PATH", "/tmp/env.db")
	t.Setenv("PET_LOG_PATH", "env.log")

	opts, err := loadConfig([]string{"-journal", "flag.db", "-history"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.cfg.JournalPath != "flag.db" {
		t.Errorf("journal = %q", opts.cfg.JournalPath)
	}
	if opts.cfg.LogPath != "env.log" {
		t.Errorf("log = %q, env value should survive", opts.cfg.LogPath)
	}
	if !opts.history {
		t.Error("history flag not set")
	}
}

func TestLoadConfigValidatesMergedResult(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"bad env not overridden", "gtk", nil, "unknown ui"},
		{"bad flag over good env", "plain", []string{"-ui", "web"}, "unknown ui"},
		{"zero tick flag", "plain", []string{"-tick", "0s"}, "tick interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PET_UI", tt.env)
			_, err := loadConfig(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q error, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigHelp(t *testing.T) {
	if _, err := loadConfig([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestRunReturnsJournalError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PET_JOURNAL_PATH", filepath.Join(blocker, "journal.db"))
	t.Setenv("PET_LOG_PATH", filepath.Join(dir, "pet.log"))
	t.Setenv("PET_UI", "plain")

	err := run(nil)
	if err == nil || !strings.Contains(err.Error(), "database directory") {
		t.Fatalf("expected journal error, got %v", err)
	}
	logged, readErr := os.ReadFile(filepath.Join(dir, "pet.log"))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.Contains(string(logged), "journal unavailable") {
		t.Errorf("log missing journal failure:\n%s", logged)
	}
}
