package campaign

// Seed returns the built-in starter campaign served when no campaign has been
// persisted yet: a welcome email wired to a three-day wait. It is not written
// to storage on load; the first accepted mutation materializes whatever the
// client saves.
func Seed() Campaign {
	return Campaign{
		Nodes: []Node{
			{
				ID:       "1",
				Type:     NodeEmail,
				Data:     map[string]any{"label": "Welcome Email", "content": "Hello!"},
				Position: Position{X: 50, Y: 50},
			},
			{
				ID:       "2",
				Type:     NodeDelay,
				Data:     map[string]any{"label": "Wait 3 Days", "days": 3},
				Position: Position{X: 50, Y: 150},
			},
		},
		Edges: []Edge{
			{ID: "e1-2", Source: "1", Target: "2"},
		},
	}
}
