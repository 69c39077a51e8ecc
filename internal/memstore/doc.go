// Package memstore provides an ephemeral, thread-safe, in-memory
// implementation of the docstore.Store interface. It is the default backend
// for development and tests; documents are lost on process restart.
package memstore
