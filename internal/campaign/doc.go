// Package campaign defines the workflow graph domain model: typed nodes,
// directed edges, and the campaign document that clients edit collaboratively.
// It also owns the sanitization rules applied to every inbound mutation and
// the seed campaign served when nothing has been persisted yet.
package campaign
