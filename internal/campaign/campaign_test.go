package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodePayloadAccessors(t *testing.T) {
	n := Node{
		ID:   "1",
		Type: NodeCondition,
		Data: map[string]any{
			"label":     "On Signup",
			"content":   "Hi",
			"eventType": "signup",
		},
	}

	assert.Equal(t, "On Signup", n.Label())
	assert.Equal(t, "Hi", n.Content())
	assert.Equal(t, "signup", n.EventType())
}

func TestNodeDaysAcceptsNumericShapes(t *testing.T) {
	tests := []struct {
		name string
		days any
		want float64
	}{
		{"float64 from JSON", 3.0, 3},
		{"int from Go payload", 3, 3},
		{"int64", int64(2), 2},
		{"missing", nil, 0},
		{"non-numeric", "three", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]any{}
			if tt.days != nil {
				data["days"] = tt.days
			}
			n := Node{ID: "d", Type: NodeDelay, Data: data}
			assert.Equal(t, tt.want, n.Days())
		})
	}
}

func TestFindCondition(t *testing.T) {
	c := Campaign{Nodes: []Node{
		{ID: "1", Type: NodeEmail, Data: map[string]any{"eventType": "signup"}},
		{ID: "2", Type: NodeCondition, Data: map[string]any{"eventType": "purchase"}},
		{ID: "3", Type: NodeCondition, Data: map[string]any{"eventType": "signup"}},
	}}

	n, ok := c.FindCondition("signup")
	require.True(t, ok)
	// The email node with a stray eventType payload must not match.
	assert.Equal(t, "3", n.ID)

	_, ok = c.FindCondition("churn")
	assert.False(t, ok)
}

func TestFirstEdgeFromTieBreaksInOrder(t *testing.T) {
	c := Campaign{Edges: []Edge{
		{ID: "e1", Source: "other", Target: "x"},
		{ID: "e2", Source: "1", Target: "a"},
		{ID: "e3", Source: "1", Target: "b"},
	}}

	e, ok := c.FirstEdgeFrom("1")
	require.True(t, ok)
	assert.Equal(t, "e2", e.ID)

	_, ok = c.FirstEdgeFrom("missing")
	assert.False(t, ok)
}

func TestSeedShape(t *testing.T) {
	seed := Seed()

	require.Len(t, seed.Nodes, 2)
	require.Len(t, seed.Edges, 1)

	email := seed.Nodes[0]
	assert.Equal(t, NodeEmail, email.Type)
	assert.Equal(t, "Hello!", email.Content())

	wait := seed.Nodes[1]
	assert.Equal(t, NodeDelay, wait.Type)
	assert.Equal(t, float64(3), wait.Days())

	edge := seed.Edges[0]
	assert.Equal(t, email.ID, edge.Source)
	assert.Equal(t, wait.ID, edge.Target)

	// The seed must already be in accepted form.
	assert.Equal(t, seed, Sanitize(seed.Nodes, seed.Edges))
}

func TestCodecRoundTrip(t *testing.T) {
	original := Seed()

	doc, err := original.Encode()
	require.NoError(t, err)

	decoded, err := Decode(doc)
	require.NoError(t, err)

	require.Len(t, decoded.Nodes, 2)
	assert.Equal(t, "Hello!", decoded.Nodes[0].Content())
	assert.Equal(t, float64(3), decoded.Nodes[1].Days())
	assert.Equal(t, original.Edges, decoded.Edges)

	_, err = Decode([]byte("{not json"))
	assert.Error(t, err)
}
