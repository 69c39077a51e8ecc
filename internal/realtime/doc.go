// Package realtime is the Socket.IO transport for the campaign editor. Each
// connection receives the current campaign on connect (replay-latest, not
// event history), may push whole-graph mutations via "campaign-update", and
// may fire "user-event" to drive traversal. One hub subscription drains
// accepted campaigns into a broadcast to every connection; a save that fails
// is never broadcast.
package realtime
