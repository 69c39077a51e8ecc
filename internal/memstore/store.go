package memstore

import (
	"context"
	"sync"

	"github.com/vk/campaignflow/internal/docstore"
)

// Store is an in-memory docstore.Store backed by sync.Map. Keys are
// independent and writes replace whole documents, so sync.Map's fine-grained
// locking fits without a global mutex.
type Store struct {
	docs sync.Map // Key: document key string, Value: []byte document
}

// New creates a new, empty in-memory document store.
func New() *Store {
	return &Store{}
}

// Get returns a copy of the document stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := s.docs.Load(key)
	if !ok {
		return nil, docstore.ErrNotFound
	}
	doc := v.([]byte)
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Put stores a copy of doc under key, replacing any previous document.
func (s *Store) Put(ctx context.Context, key string, doc []byte) error {
	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs.Store(key, stored)
	return nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}
