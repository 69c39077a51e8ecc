// Package hub fans accepted campaign state out to connected subscribers.
// Publishing is non-blocking: a subscriber that cannot keep up misses a
// frame, which is harmless because every accepted mutation carries the whole
// campaign and supersedes anything dropped before it.
package hub
