package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable Store backend. Every collection lives in
// one row of the collections table, keyed by name, with the serialized
// JSON array as its blob value.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w: %w", ErrUnavailable, err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read implements Store. A name with no row decodes as the empty
// sequence.
func (s *SQLiteStore) Read(ctx context.Context, collection string, out any) error {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, collection,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %q: %w: %w", collection, ErrUnavailable, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode collection %q: %w: %w", collection, ErrSerialization, err)
	}
	return nil
}

// Write implements Store. The upsert runs as a single statement, so a
// failed write leaves the previous row contents intact.
func (s *SQLiteStore) Write(ctx context.Context, collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w: %w", collection, ErrSerialization, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write collection %q: %w: %w", collection, ErrUnavailable, err)
	}

	slog.DebugContext(ctx, "Collection written",
		"collection", collection,
		"bytes", len(data))
	return nil
}
