// Package config loads runtime settings for the tamagotchi binary.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// UI modes.
const (
	UITerminal = "tui"
	UIPlain    = "plain"
)

// Config holds process settings read from the environment.
type Config struct {
	TickInterval   time.Duration `env:"PET_TICK_INTERVAL"   envDefault:"5s"`
	RedrawInterval time.Duration `env:"PET_REDRAW_INTERVAL" envDefault:"250ms"`
	LogPath        string        `env:"PET_LOG_PATH"        envDefault:"tamagotchi.log"`
	JournalPath    string        `env:"PET_JOURNAL_PATH"`
	UI             string        `env:"PET_UI"              envDefault:"tui"`
}

// Validate rejects settings the engine cannot run with. Call it after every
// override (flags) has been applied.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.RedrawInterval <= 0 {
		return fmt.Errorf("redraw interval must be positive, got %s", c.RedrawInterval)
	}
	switch c.UI {
	case UITerminal, UIPlain:
	default:
		return fmt.Errorf("unknown ui %q (want %q or %q)", c.UI, UITerminal, UIPlain)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
