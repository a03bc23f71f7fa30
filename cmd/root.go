package cmd

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/answerclass/internal/config"
	"github.com/abhisek/answerclass/internal/store"
	"github.com/spf13/cobra"
)

// cfg is loaded from the environment before any subcommand runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "answerclass",
	Short: "Evaluate learner answers against answer-matching rules",
	Long: `answerclass checks a learner's answer against one rule of an interaction
(e.g. RatioExpressionInput.IsEquivalent) and reports whether it matches.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.FromEnv()
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		slog.SetDefault(cfg.NewLogger())
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite verdict log (overrides ANSWERCLASS_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides ANSWERCLASS_LOG_LEVEL)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ANSWERCLASS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the verdict log for the current command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
