package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.RecordHistory)
	assert.Equal(t, 20, cfg.HistoryLimit)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ANSWERCLASS_DB", "/tmp/verdicts.db")
	t.Setenv("ANSWERCLASS_LOG_LEVEL", "DEBUG")
	t.Setenv("ANSWERCLASS_NO_HISTORY", "true")
	t.Setenv("ANSWERCLASS_HISTORY_LIMIT", "5")

	cfg := FromEnv()
	assert.Equal(t, "/tmp/verdicts.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.RecordHistory)
	assert.Equal(t, 5, cfg.HistoryLimit)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestFromEnv_IgnoresMalformed(t *testing.T) {
	t.Setenv("ANSWERCLASS_NO_HISTORY", "maybe")
	t.Setenv("ANSWERCLASS_HISTORY_LIMIT", "many")

	cfg := FromEnv()
	assert.True(t, cfg.RecordHistory)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"error level", func(c *Config) { c.LogLevel = "error" }, false},
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"zero history limit", func(c *Config) { c.HistoryLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
