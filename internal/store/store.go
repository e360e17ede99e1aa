// Package store persists quizdev's event log in SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/mujeeb/quizdev/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and the repositories built on it.
type Store struct {
	db     *sql.DB
	client *ent.Client
	events EventRepo
}

// Open connects to the SQLite database at dsn, tunes its pragmas, and
// auto-migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		client: client,
		events: &eventRepo{client: client, db: db, seq: seq},
	}, nil
}

// Client exposes the ent client for generated queries.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw handle for SQL that ent cannot express.
func (s *Store) DB() *sql.DB { return s.db }

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() EventRepo { return s.events }

func (s *Store) Close() error {
	return s.client.Close()
}

// applyPragmas tunes SQLite for a single local writer: WAL journaling,
// relaxed fsync, and foreign keys on.
func applyPragmas(db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// DefaultDBPath resolves where the database lives: the QUIZDEV_DB
// variable when set, otherwise quizdev/quizdev.db under XDG_DATA_HOME
// (defaulting to ~/.local/share).
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDEV_DB"); p != "" {
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

	p := filepath.Join(dataHome, "quizdev", "quizdev.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
