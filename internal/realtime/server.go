package realtime

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/vk/campaignflow/internal/campaignstore"
	"github.com/vk/campaignflow/internal/ctxlog"
	"github.com/vk/campaignflow/internal/hub"
	"github.com/vk/campaignflow/internal/router"
)

// Config carries the transport settings taken from app configuration.
type Config struct {
	// CampaignID is the campaign this deployment serves.
	CampaignID string
	// CORSOrigins lists the allowed browser origins.
	CORSOrigins []string
}

// Server owns the Socket.IO endpoint and its hub subscription.
type Server struct {
	ctx        context.Context
	io         *socket.Server
	store      *campaignstore.Store
	router     *router.Router
	hub        *hub.Hub
	sub        *hub.Subscription
	campaignID string
}

// New creates the Socket.IO server, registers the connection handler, and
// starts draining the hub into the all-connections broadcast. ctx carries
// the application logger and bounds background work.
func New(ctx context.Context, store *campaignstore.Store, rt *router.Router, h *hub.Hub, cfg Config) *Server {
	opts := socket.DefaultServerOptions()
	opts.SetCors(&types.Cors{
		Origin:      cfg.CORSOrigins,
		Methods:     []string{http.MethodGet, http.MethodPost},
		Credentials: true,
	})

	s := &Server{
		ctx:        ctx,
		io:         socket.NewServer(nil, opts),
		store:      store,
		router:     rt,
		hub:        h,
		campaignID: cfg.CampaignID,
	}

	s.io.On("connection", func(clients ...any) {
		s.onConnection(clients[0].(*socket.Socket))
	})

	s.sub = h.Subscribe()
	go s.fanOut()

	return s
}

// Handler returns the http.Handler to mount at /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.io.ServeHandler(nil)
}

// Close detaches from the hub and shuts the Socket.IO server down.
func (s *Server) Close() {
	s.sub.Unsubscribe()
	s.io.Close(nil)
}

// fanOut forwards every accepted campaign from the hub to all connections.
// It exits when the subscription channel is closed.
func (s *Server) fanOut() {
	logger := ctxlog.FromContext(s.ctx)
	for c := range s.sub.C {
		if err := s.io.Sockets().Emit("campaign-update", c); err != nil {
			logger.Warn("Broadcasting campaign update failed.", "error", err)
		}
	}
}

func (s *Server) onConnection(client *socket.Socket) {
	logger := ctxlog.FromContext(s.ctx).With("socket_id", string(client.Id()))
	logger.Info("Client connected.")

	// Replay-latest: a new connection immediately sees the current graph.
	snapshot, err := s.store.Load(s.ctx, s.campaignID)
	if err != nil {
		logger.Warn("Loading campaign for connect replay failed.", "error", err)
	}
	if err := client.Emit("campaign-update", snapshot); err != nil {
		logger.Warn("Sending campaign to new client failed.", "error", err)
	}

	client.On("campaign-update", func(args ...any) {
		s.onCampaignUpdate(logger, args...)
	})
	client.On("user-event", func(args ...any) {
		s.onUserEvent(logger, args...)
	})
	client.On("disconnect", func(...any) {
		logger.Info("Client disconnected.")
	})
	client.On("error", func(args ...any) {
		logger.Error("Socket error.", "args", args)
	})
}

// onCampaignUpdate sanitizes and persists an inbound graph mutation. Only a
// successful save reaches the hub; a failed save is logged and the other
// clients never see the rejected state.
func (s *Server) onCampaignUpdate(logger *slog.Logger, args ...any) {
	if len(args) == 0 {
		logger.Debug("campaign-update without payload.")
		return
	}
	var p graphPayload
	if err := decodePayload(args[0], &p); err != nil {
		logger.Warn("Malformed campaign-update payload.", "error", err)
		return
	}

	saved, err := s.store.Save(s.ctx, s.campaignID, p.Nodes, p.Edges)
	if err != nil {
		logger.Error("Persisting campaign failed, update not broadcast.", "error", err)
		return
	}
	s.hub.Publish(saved)
}

// onUserEvent hands the event to the traversal router. Routing loads the
// store and may schedule timers, so it runs off the socket callback.
func (s *Server) onUserEvent(logger *slog.Logger, args ...any) {
	if len(args) == 0 {
		logger.Debug("user-event without payload.")
		return
	}
	var p userEventPayload
	if err := decodePayload(args[0], &p); err != nil {
		logger.Warn("Malformed user-event payload.", "error", err)
		return
	}

	go s.router.HandleEvent(s.ctx, s.campaignID, router.UserEvent{
		UserID:    p.UserID,
		EventType: p.EventType,
	})
}
