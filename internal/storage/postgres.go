package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresKV implements KeyValue over a single kv_entries table, for
// deployments that already run the marketplace database.
type PostgresKV struct {
	db *sqlx.DB
}

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// NewPostgresKV connects to Postgres and ensures the table exists.
func NewPostgresKV(databaseURL string) (*PostgresKV, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure kv_entries table: %w", err)
	}

	return &PostgresKV{db: db}, nil
}

// Get retrieves the value for a key.
func (s *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM kv_entries WHERE key = $1`

	err := s.db.GetContext(ctx, &value, query, key)
	if err == sql.ErrNoRows {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get entry: %w", err)
	}
	return value, nil
}

// Set writes the value for a key as a single upsert.
func (s *PostgresKV) Set(ctx context.Context, key string, value string) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set entry: %w", err)
	}
	return nil
}

// Close closes the database connection pool.
func (s *PostgresKV) Close() error {
	return s.db.Close()
}
