// Package redisstore implements docstore.Store on Redis. Documents are plain
// string values under their key, written without TTL: the campaign document
// lives until the next save replaces it.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vk/campaignflow/internal/docstore"
)

// Store is a Redis-backed document store.
type Store struct {
	client *redis.Client
}

// New connects to the Redis instance described by url (redis://...) and
// verifies the connection with a ping before returning.
func New(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Get fetches the document stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, docstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	return doc, nil
}

// Put upserts the document under key.
func (s *Store) Put(ctx context.Context, key string, doc []byte) error {
	if err := s.client.Set(ctx, key, doc, 0).Err(); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
