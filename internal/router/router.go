package router

import (
	"context"
	"time"

	"github.com/vk/campaignflow/internal/campaign"
	"github.com/vk/campaignflow/internal/campaignstore"
	"github.com/vk/campaignflow/internal/ctxlog"
	"github.com/vk/campaignflow/internal/delay"
	"github.com/vk/campaignflow/internal/mailer"
)

// DefaultDayDuration is the wall-clock length of one campaign "day". The
// interactive test-mode scaling inherited from the product: one day elapses
// in one second so delay chains can be exercised live.
const DefaultDayDuration = time.Second

// UserEvent is an external event attributed to a user. It is transient:
// owned by the caller, never persisted.
type UserEvent struct {
	UserID    string
	EventType string
}

// Router resolves user events against the current campaign graph and
// performs the resulting side effects.
type Router struct {
	store       *campaignstore.Store
	sched       *delay.Scheduler
	sender      mailer.Sender
	dayDuration time.Duration
}

// Option configures a Router.
type Option func(*Router)

// WithDayDuration overrides the wall-clock length of one campaign day.
// Tests use millisecond days; a production deployment would use real days.
func WithDayDuration(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.dayDuration = d
		}
	}
}

// New creates a router over the given store, scheduler, and sender.
func New(store *campaignstore.Store, sched *delay.Scheduler, sender mailer.Sender, opts ...Option) *Router {
	r := &Router{
		store:       store,
		sched:       sched,
		sender:      sender,
		dayDuration: DefaultDayDuration,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleEvent runs one traversal step for evt against campaignID. It is
// fire-and-forget: every outcome, including a graph with nothing to do for
// this event, is handled locally and logged, never returned.
func (r *Router) HandleEvent(ctx context.Context, campaignID string, evt UserEvent) {
	logger := ctxlog.FromContext(ctx).With(
		"campaign_id", campaignID, "user_id", evt.UserID, "event_type", evt.EventType)
	logger.Debug("Processing user event.")

	snapshot, err := r.store.Load(ctx, campaignID)
	if err != nil {
		// Load already fell back to an empty campaign; the traversal
		// below simply finds no condition node.
		logger.Warn("Loading campaign for event failed.", "error", err)
	}

	cond, ok := snapshot.FindCondition(evt.EventType)
	if !ok {
		logger.Debug("No condition node matches event type.")
		return
	}
	edge, ok := snapshot.FirstEdgeFrom(cond.ID)
	if !ok {
		logger.Debug("No outgoing edge from condition node.", "node_id", cond.ID)
		return
	}
	next, ok := snapshot.NodeByID(edge.Target)
	if !ok {
		logger.Debug("Edge target node missing.", "edge_id", edge.ID, "target", edge.Target)
		return
	}

	switch next.Type {
	case campaign.NodeEmail:
		if err := r.sender.Send(ctx, evt.UserID, next.Content()); err != nil {
			logger.Warn("Email send failed.", "node_id", next.ID, "error", err)
		}
	case campaign.NodeDelay:
		wait := time.Duration(next.Days() * float64(r.dayDuration))
		// Detach from the request context: the timer outlives the event
		// delivery but keeps its logger.
		resumeCtx := context.WithoutCancel(ctx)
		task := delay.Task{UserID: evt.UserID, NodeID: next.ID}
		id := r.sched.Schedule(task, wait, func(t delay.Task) {
			r.resume(resumeCtx, campaignID, t)
		})
		logger.Info("Delay scheduled.", "task_id", id, "node_id", next.ID, "wait", wait)
	default:
		// A condition node as traversal target has no defined action.
		logger.Debug("Target node type has no action.", "node_id", next.ID, "type", string(next.Type))
	}
}

// resume continues a traversal paused by a delay node. It deliberately
// re-loads the campaign instead of carrying the scheduling-time snapshot:
// the send uses whatever graph exists now.
func (r *Router) resume(ctx context.Context, campaignID string, t delay.Task) {
	logger := ctxlog.FromContext(ctx).With(
		"campaign_id", campaignID, "user_id", t.UserID, "task_id", t.ID)
	logger.Debug("Delay elapsed, resuming traversal.", "node_id", t.NodeID)

	fresh, err := r.store.Load(ctx, campaignID)
	if err != nil {
		logger.Warn("Loading campaign for resumption failed.", "error", err)
	}

	edge, ok := fresh.FirstEdgeFrom(t.NodeID)
	if !ok {
		logger.Debug("No outgoing edge from delay node.", "node_id", t.NodeID)
		return
	}
	next, ok := fresh.NodeByID(edge.Target)
	if !ok {
		logger.Debug("Edge target node missing.", "edge_id", edge.ID, "target", edge.Target)
		return
	}
	if next.Type != campaign.NodeEmail {
		logger.Debug("Resumption target is not an email node.", "node_id", next.ID, "type", string(next.Type))
		return
	}

	if err := r.sender.Send(ctx, t.UserID, next.Content()); err != nil {
		logger.Warn("Email send failed.", "node_id", next.ID, "error", err)
	}
}
