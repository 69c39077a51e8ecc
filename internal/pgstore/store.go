// Package pgstore implements docstore.Store on PostgreSQL. Documents live in
// a single documents table as jsonb, upserted by key.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vk/campaignflow/internal/docstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store is a PostgreSQL-backed document store.
type Store struct {
	pool *pgxpool.Pool
}

// New opens a connection pool for url, verifies connectivity, and ensures the
// documents table exists.
func New(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure documents table: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Get fetches the document stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM documents WHERE key = $1`, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	return doc, nil
}

// Put upserts the document under key.
func (s *Store) Put(ctx context.Context, key string, doc []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (key, doc) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, doc)
	if err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
