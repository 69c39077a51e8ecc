package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("docstore: document not found")

// Store persists whole documents by key. Put replaces any previous document
// under the same key (upsert). Implementations must be safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, doc []byte) error
	Close() error
}
