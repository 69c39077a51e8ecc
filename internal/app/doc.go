// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle: wiring the document
// store, campaign repository, broadcast hub, delay scheduler, event router,
// and realtime transport together, and serving them until shutdown. It is
// decoupled from any specific entrypoint like a CLI.
package app
