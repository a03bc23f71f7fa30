package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// VerdictRepo returns a VerdictRepo backed by this store.
func (s *Store) VerdictRepo() VerdictRepo {
	return &verdictRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS verdicts (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		interaction TEXT NOT NULL,
		rule        TEXT NOT NULL,
		answer      TEXT NOT NULL,
		inputs      TEXT NOT NULL,
		matched     INTEGER NOT NULL,
		error       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create verdicts table: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_verdicts_interaction ON verdicts (interaction, rule)`)
	if err != nil {
		return fmt.Errorf("create verdicts index: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ANSWERCLASS_DB environment variable
// 2. $XDG_DATA_HOME/answerclass/verdicts.db
// 3. ~/.local/share/answerclass/verdicts.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ANSWERCLASS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "answerclass", "verdicts.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
