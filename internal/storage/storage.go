// Package storage provides durable local persistence for the dashboard
// collections. Each collection is kept under its own key as a single
// JSON document, wrapped in a schema-version envelope so the layout can
// be migrated safely later.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Collection keys. One entry per collection; every mutation rewrites the
// owning collection's entry in full.
const (
	KeyTeamTasks     = "team_tasks"
	KeyPersonalTasks = "personal_tasks"
	KeyNotes         = "notes"
	KeyColumns       = "columns"
	KeyKanban        = "kanban_board"
)

// SchemaVersion is written alongside every payload. Entries with a newer
// version than this build understands are treated as absent.
const SchemaVersion = 1

// Store is a key-value document store backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and prepares the schema.
// Pass ":memory:" for an ephemeral store in tests.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing db", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// Single writer connection; the whole collection is rewritten on
	// every mutation so contention is not a concern at this data scale.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key TEXT PRIMARY KEY,
	schema_version INTEGER NOT NULL,
	payload TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Load reads the collection stored under key into dest. It returns false
// when no usable entry exists. A corrupt or forward-versioned payload is
// treated as absent (fail-open): the caller falls back to defaults and
// the condition is logged, never raised.
func (s *Store) Load(ctx context.Context, key string, dest any) (bool, error) {
	var (
		version int
		payload string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT schema_version, payload FROM collections WHERE key = ?", key,
	).Scan(&version, &payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %q: %w", key, err)
	}

	if version > SchemaVersion {
		slog.Warn("collection written by a newer version, ignoring",
			"key", key, "version", version, "supported", SchemaVersion)
		return false, nil
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		slog.Warn("corrupt collection payload, falling back to defaults",
			"key", key, "error", err)
		return false, nil
	}

	return true, nil
}

// Save serializes value and rewrites the entry under key.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (key, schema_version, payload, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		key, SchemaVersion, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
