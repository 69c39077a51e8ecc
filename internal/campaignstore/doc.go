// Package campaignstore is the keyed campaign repository. It owns the
// persisted campaign document: loads return a self-consistent snapshot (or
// the seed campaign when nothing is persisted yet), and saves sanitize and
// replace the whole document. All other components read snapshots through
// this package; none hold a shared mutable reference to the graph.
package campaignstore
