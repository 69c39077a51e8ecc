package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/campaignflow/internal/campaign"
)

// Socket.IO hands listener arguments over as generic maps, the shape these
// tests reproduce.

func TestDecodeGraphPayload(t *testing.T) {
	raw := map[string]any{
		"nodes": []any{
			map[string]any{
				"id":   "1",
				"type": "condition",
				"data": map[string]any{"eventType": "signup"},
				"position": map[string]any{
					"x": 50.0,
					"y": 150.0,
				},
			},
			map[string]any{
				"id":   "2",
				"type": "email",
			},
		},
		"edges": []any{
			map[string]any{"id": "e1", "source": "1", "target": "2"},
		},
	}

	var p graphPayload
	require.NoError(t, decodePayload(raw, &p))

	require.Len(t, p.Nodes, 2)
	assert.Equal(t, campaign.NodeCondition, p.Nodes[0].Type)
	assert.Equal(t, "signup", p.Nodes[0].EventType())
	assert.Equal(t, campaign.Position{X: 50, Y: 150}, p.Nodes[0].Position)
	assert.Equal(t, campaign.Position{}, p.Nodes[1].Position)

	require.Len(t, p.Edges, 1)
	assert.Equal(t, campaign.Edge{ID: "e1", Source: "1", Target: "2"}, p.Edges[0])
}

func TestDecodeUserEventPayload(t *testing.T) {
	raw := map[string]any{"userId": "u1", "eventType": "signup"}

	var p userEventPayload
	require.NoError(t, decodePayload(raw, &p))

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "signup", p.EventType)
}

func TestDecodeRejectsMismatchedShape(t *testing.T) {
	var p graphPayload
	err := decodePayload(map[string]any{"nodes": "not-a-list"}, &p)
	assert.Error(t, err)
}
