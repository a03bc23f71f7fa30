// Package config holds runtime settings for the answerclass CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds CLI configuration.
type Config struct {
	// DBPath is the SQLite verdict log location. Empty means the default
	// XDG data path.
	DBPath string

	// LogLevel is one of "debug", "info", "warn", "error". Default: "warn".
	LogLevel string

	// RecordHistory controls whether classify appends verdicts to the log.
	RecordHistory bool

	// HistoryLimit is how many rows `history` shows by default.
	HistoryLimit int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "warn",
		RecordHistory: true,
		HistoryLimit:  20,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ANSWERCLASS_DB"); p != "" {
		cfg.DBPath = p
	}
	if l := os.Getenv("ANSWERCLASS_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if v := os.Getenv("ANSWERCLASS_NO_HISTORY"); v != "" {
		if off, err := strconv.ParseBool(v); err == nil {
			cfg.RecordHistory = !off
		}
	}
	if v := os.Getenv("ANSWERCLASS_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HistoryLimit = n
		}
	}

	return cfg
}

// Validate checks that all settings are usable.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("ANSWERCLASS_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// NewLogger returns a text logger writing to stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
