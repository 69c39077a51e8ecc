package campaignstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/campaignflow/internal/campaign"
	"github.com/vk/campaignflow/internal/memstore"
)

func TestLoadServesSeedWhenNothingPersisted(t *testing.T) {
	docs := memstore.New()
	s := New(docs)
	ctx := context.Background()

	got, err := s.Load(ctx, campaign.DefaultID)
	require.NoError(t, err)

	require.Len(t, got.Nodes, 2)
	require.Len(t, got.Edges, 1)
	assert.Equal(t, campaign.NodeEmail, got.Nodes[0].Type)
	assert.Equal(t, campaign.NodeDelay, got.Nodes[1].Type)
	assert.Equal(t, got.Nodes[0].ID, got.Edges[0].Source)
	assert.Equal(t, got.Nodes[1].ID, got.Edges[0].Target)

	// Serving the seed must not persist it.
	_, err = docs.Get(ctx, "campaign:"+campaign.DefaultID)
	assert.Error(t, err)
}

func TestSaveSanitizesAndPersists(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	nodes := []campaign.Node{
		{ID: "1", Type: campaign.NodeEmail, Data: map[string]any{"content": "Hi"}},
		{ID: "2", Type: campaign.NodeType("bogus")},
	}
	edges := []campaign.Edge{
		{ID: "e1", Source: "1", Target: "2"},      // target dropped with node 2
		{ID: "e2", Source: "1", Target: "absent"}, // dangling target
	}

	saved, err := s.Save(ctx, campaign.DefaultID, nodes, edges)
	require.NoError(t, err)
	require.Len(t, saved.Nodes, 1)
	assert.Empty(t, saved.Edges)

	// The persisted form matches what Save returned.
	reloaded, err := s.Load(ctx, campaign.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, saved, reloaded)
}

func TestSaveIsKeyedByCampaignID(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	_, err := s.Save(ctx, "a", []campaign.Node{{ID: "1", Type: campaign.NodeEmail}}, nil)
	require.NoError(t, err)
	_, err = s.Save(ctx, "b", []campaign.Node{{ID: "2", Type: campaign.NodeDelay}}, nil)
	require.NoError(t, err)

	a, err := s.Load(ctx, "a")
	require.NoError(t, err)
	b, err := s.Load(ctx, "b")
	require.NoError(t, err)

	require.Len(t, a.Nodes, 1)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, "1", a.Nodes[0].ID)
	assert.Equal(t, "2", b.Nodes[0].ID)
}

// failingStore simulates an unreachable backend.
type failingStore struct {
	getErr error
	putErr error
	doc    []byte
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.doc, nil
}

func (f *failingStore) Put(ctx context.Context, key string, doc []byte) error {
	return f.putErr
}

func (f *failingStore) Close() error { return nil }

func TestLoadFallsBackToEmptyOnBackendError(t *testing.T) {
	s := New(&failingStore{getErr: errors.New("connection refused")})

	got, err := s.Load(context.Background(), campaign.DefaultID)
	require.Error(t, err)
	assert.NotNil(t, got.Nodes)
	assert.Empty(t, got.Nodes)
	assert.Empty(t, got.Edges)
}

func TestLoadFallsBackToEmptyOnCorruptDocument(t *testing.T) {
	s := New(&failingStore{doc: []byte("{corrupt")})

	got, err := s.Load(context.Background(), campaign.DefaultID)
	require.Error(t, err)
	assert.Empty(t, got.Nodes)
}

func TestSaveFailureLeavesPriorStateAndReportsError(t *testing.T) {
	docs := memstore.New()
	s := New(docs)
	ctx := context.Background()

	prior, err := s.Save(ctx, campaign.DefaultID, []campaign.Node{{ID: "1", Type: campaign.NodeEmail}}, nil)
	require.NoError(t, err)

	// Swap in a store whose writes fail but whose reads still serve the
	// previously persisted document.
	priorDoc, err := docs.Get(ctx, "campaign:"+campaign.DefaultID)
	require.NoError(t, err)
	broken := New(&failingStore{putErr: errors.New("write timeout"), doc: priorDoc})

	_, err = broken.Save(ctx, campaign.DefaultID, []campaign.Node{{ID: "2", Type: campaign.NodeDelay}}, nil)
	require.Error(t, err)

	reloaded, err := broken.Load(ctx, campaign.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, prior, reloaded)
}
