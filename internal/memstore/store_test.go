package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/campaignflow/internal/docstore"
)

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "campaign:default")
	require.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestPutThenGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte(`{"nodes":[]}`)))

	doc, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"nodes":[]}`), doc)
}

func TestPutReplacesWholeDocument(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte("first")))
	require.NoError(t, s.Put(ctx, "k", []byte("second")))

	doc, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), doc)
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte("stable")))

	doc, err := s.Get(ctx, "k")
	require.NoError(t, err)
	doc[0] = 'X'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("stable"), again)
}

// TestStore_ConcurrentAccess verifies that the store can be safely accessed
// by multiple goroutines simultaneously without data races or lost writes.
func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	numGoroutines := 100
	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("campaign:%d", i)
			if err := s.Put(ctx, key, []byte(fmt.Sprintf("doc-%d", i))); err != nil {
				t.Errorf("put %s: %v", key, err)
			}
		}(i)
	}
	wg.Wait()

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("campaign:%d", i)
			doc, err := s.Get(ctx, key)
			assert.NoError(t, err)
			assert.Equal(t, []byte(fmt.Sprintf("doc-%d", i)), doc, "mismatched document for %s", key)
		}(i)
	}
	wg.Wait()
}
