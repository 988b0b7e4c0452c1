package ratingcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users then delete the cache file and start fresh.
const schemaVersion = 1

// ErrSchemaMismatch indicates the cache file was written by an incompatible
// version.
var ErrSchemaMismatch = errors.New("rating cache schema mismatch")

// Store persists rating lookups backed by SQLite. A nil Store is a valid
// no-op cache.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("rating cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns the cached rating for the given IMDb identifier if present.
func (s *Store) Lookup(ctx context.Context, imdbID string) (float64, bool, error) {
	if s == nil || s.db == nil {
		return 0, false, nil
	}
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return 0, false, nil
	}

	var rating float64
	err := s.db.QueryRowContext(ctx,
		`SELECT rating FROM ratings WHERE imdb_id = ?`, imdbID,
	).Scan(&rating)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query rating for %s: %w", imdbID, err)
	}
	return rating, true, nil
}

// Put stores or replaces the rating for the given IMDb identifier.
func (s *Store) Put(ctx context.Context, imdbID string, rating float64) error {
	if s == nil || s.db == nil {
		return nil
	}
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return errors.New("imdb id must not be empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ratings (imdb_id, rating, cached_at) VALUES (?, ?, ?)
         ON CONFLICT(imdb_id) DO UPDATE SET rating = excluded.rating, cached_at = excluded.cached_at`,
		imdbID,
		rating,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store rating for %s: %w", imdbID, err)
	}
	return nil
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: cache has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}
