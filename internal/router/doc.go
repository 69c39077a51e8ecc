// Package router walks the campaign graph in response to external user
// events. It is a single-step interpreter: each step loads a fresh snapshot
// from the campaign store, finds the condition node reacting to the event,
// follows its first outgoing edge, and acts on the target (send an email, or
// hand a continuation to the delay scheduler). The delayed continuation
// re-reads the store when it fires rather than reusing the snapshot it was
// scheduled from: freshness over snapshot isolation, so edits made while a
// delay was pending are honored, at the accepted cost that the delay node
// itself may have been deleted or rewired in the interim.
package router
