package campaign

// Sanitize validates and normalizes a raw client-submitted graph.
//
// Nodes survive when they have a non-empty id and a known type; a nil Data
// payload is normalized to an empty map and the zero Position already is the
// default origin. Edges survive when they have a non-empty id and both
// endpoints reference surviving nodes. Anything else is dropped silently:
// malformed input is a filtering concern, not an error. Order is preserved,
// and the function is idempotent.
func Sanitize(nodes []Node, edges []Edge) Campaign {
	keptNodes := make([]Node, 0, len(nodes))
	keptIDs := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if n.ID == "" || !n.Type.Valid() {
			continue
		}
		if n.Data == nil {
			n.Data = map[string]any{}
		}
		keptNodes = append(keptNodes, n)
		keptIDs[n.ID] = struct{}{}
	}

	keptEdges := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.ID == "" {
			continue
		}
		if _, ok := keptIDs[e.Source]; !ok {
			continue
		}
		if _, ok := keptIDs[e.Target]; !ok {
			continue
		}
		keptEdges = append(keptEdges, e)
	}

	return Campaign{Nodes: keptNodes, Edges: keptEdges}
}
