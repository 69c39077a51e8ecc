package campaignstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/campaignflow/internal/campaign"
	"github.com/vk/campaignflow/internal/ctxlog"
	"github.com/vk/campaignflow/internal/docstore"
)

const keyPrefix = "campaign:"

// Store persists campaigns as whole documents keyed by campaign id.
// Concurrency discipline is last-writer-wins at the granularity of a whole
// Save: there is no merge and no optimistic concurrency token.
type Store struct {
	docs docstore.Store
}

// New creates a campaign store over the given document backend.
func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func key(id string) string {
	return keyPrefix + id
}

// Load returns the persisted campaign for id.
//
// When no document exists yet, the built-in seed campaign is returned without
// being persisted; it is served transiently until the first mutation
// materializes a document. When the backend fails or the document cannot be
// decoded, an empty campaign is returned together with the error so callers
// can log it and carry on: persistence failures never escalate past the
// single operation.
func (s *Store) Load(ctx context.Context, id string) (campaign.Campaign, error) {
	doc, err := s.docs.Get(ctx, key(id))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			ctxlog.FromContext(ctx).Debug("No campaign persisted, serving seed.", "campaign_id", id)
			return campaign.Seed(), nil
		}
		return emptyCampaign(), fmt.Errorf("failed to load campaign %q: %w", id, err)
	}

	c, err := campaign.Decode(doc)
	if err != nil {
		return emptyCampaign(), fmt.Errorf("failed to decode campaign %q: %w", id, err)
	}
	return c, nil
}

// Save sanitizes the submitted graph and replaces the persisted campaign
// wholesale. On persistence failure the prior document is untouched, the
// error is returned, and no retry is attempted; the caller decides what to
// do (and must not broadcast a mutation that was never durably accepted).
// The returned campaign is the sanitized, persisted form.
func (s *Store) Save(ctx context.Context, id string, nodes []campaign.Node, edges []campaign.Edge) (campaign.Campaign, error) {
	sanitized := campaign.Sanitize(nodes, edges)

	doc, err := sanitized.Encode()
	if err != nil {
		return campaign.Campaign{}, fmt.Errorf("failed to encode campaign %q: %w", id, err)
	}
	if err := s.docs.Put(ctx, key(id), doc); err != nil {
		return campaign.Campaign{}, fmt.Errorf("failed to save campaign %q: %w", id, err)
	}

	ctxlog.FromContext(ctx).Debug("Campaign saved.",
		"campaign_id", id, "nodes", len(sanitized.Nodes), "edges", len(sanitized.Edges))
	return sanitized, nil
}

func emptyCampaign() campaign.Campaign {
	return campaign.Campaign{Nodes: []campaign.Node{}, Edges: []campaign.Edge{}}
}
