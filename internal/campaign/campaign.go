package campaign

// DefaultID is the campaign id used by the single-campaign deployment mode.
// Storage is keyed by id throughout, so multi-campaign support only needs
// callers to pass something else.
const DefaultID = "default"

// NodeType enumerates the workflow step kinds a campaign may contain.
type NodeType string

const (
	// NodeEmail sends an email to the user when reached.
	NodeEmail NodeType = "email"
	// NodeDelay pauses traversal for a number of days before following
	// its outgoing edge.
	NodeDelay NodeType = "delay"
	// NodeCondition reacts to an external user event and starts traversal.
	NodeCondition NodeType = "condition"
)

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeEmail, NodeDelay, NodeCondition:
		return true
	}
	return false
}

// Position is a node's location on the editor canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single typed step in the workflow graph. Data carries the
// type-dependent payload (label, content, days, eventType) exactly as the
// client submitted it.
type Node struct {
	ID       string         `json:"id"`
	Type     NodeType       `json:"type"`
	Data     map[string]any `json:"data"`
	Position Position       `json:"position"`
}

// Label returns the display label from the node payload, if any.
func (n Node) Label() string { return n.stringField("label") }

// Content returns the email body for email nodes.
func (n Node) Content() string { return n.stringField("content") }

// EventType returns the user event a condition node reacts to.
func (n Node) EventType() string { return n.stringField("eventType") }

// Days returns the wait duration of a delay node in days. JSON decoding
// yields float64, but payloads assembled in Go may carry int variants, so
// all numeric shapes are accepted. Missing or non-numeric values read as 0.
func (n Node) Days() float64 {
	switch v := n.Data["days"].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func (n Node) stringField(key string) string {
	if s, ok := n.Data[key].(string); ok {
		return s
	}
	return ""
}

// Edge is a directed connection between two nodes, defining traversal order.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Campaign is the whole workflow document. Node and edge order is
// meaningful: traversal tie-breaks resolve to the first match in sequence.
type Campaign struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID returns the node with the given id.
func (c Campaign) NodeByID(id string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// FindCondition returns the first condition node reacting to eventType.
func (c Campaign) FindCondition(eventType string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.Type == NodeCondition && n.EventType() == eventType {
			return n, true
		}
	}
	return Node{}, false
}

// FirstEdgeFrom returns the first edge in sequence order whose source is the
// given node id. Campaigns are expected to have at most one outgoing edge per
// node; when clients submit more, first-in-order wins.
func (c Campaign) FirstEdgeFrom(source string) (Edge, bool) {
	for _, e := range c.Edges {
		if e.Source == source {
			return e, true
		}
	}
	return Edge{}, false
}
