// Package store persists attempts, insights, and child profiles in a
// local SQLite database via ent. All repositories hand out domain types
// from the attempt and insights packages; ent entities never leak past
// this package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/numbond/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Single-writer local app: WAL keeps the TUI responsive while the
// background insight pass writes.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store owns the database handle and hands out typed repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite file at dsn, applies pragmas, and runs
// schema migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, &StorageError{Op: "open", Err: fmt.Errorf("%s: %w", p, err)}
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, &StorageError{Op: "migrate", Err: err}
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, &StorageError{Op: "migrate", Err: err}
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the ent client for tests.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw handle for queries ent can't express.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

// AttemptLog returns the attempt repository backed by this store.
func (s *Store) AttemptLog() AttemptLog {
	return &attemptLog{client: s.client, seq: s.seq}
}

// InsightStore returns the insight repository backed by this store.
func (s *Store) InsightStore() InsightStore {
	return &insightStore{client: s.client, seq: s.seq}
}

// Profiles returns the child profile repository backed by this store.
func (s *Store) Profiles() ProfileRepo {
	return &profileRepo{client: s.client}
}

// Events returns the LLM request event repository.
func (s *Store) Events() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// DefaultDBPath resolves the database location: NUMBOND_DB wins, then
// $XDG_DATA_HOME/numbond/numbond.db, then ~/.local/share/numbond/.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("NUMBOND_DB"); p != "" {
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

	p := filepath.Join(dataHome, "numbond", "numbond.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
