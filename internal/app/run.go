package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/campaignflow/internal/campaign"
	"github.com/vk/campaignflow/internal/campaignstore"
	"github.com/vk/campaignflow/internal/ctxlog"
	"github.com/vk/campaignflow/internal/delay"
	"github.com/vk/campaignflow/internal/hub"
	"github.com/vk/campaignflow/internal/mailer"
	"github.com/vk/campaignflow/internal/realtime"
	"github.com/vk/campaignflow/internal/router"
)

const shutdownTimeout = 5 * time.Second

// Run wires the engine together and serves until ctx is cancelled or the
// HTTP server fails. Shutdown order: stop accepting HTTP, close the realtime
// server, cancel pending delay tasks, close the hub, release storage.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	docs, err := a.openDocStore(ctx)
	if err != nil {
		return err
	}
	defer docs.Close()

	store := campaignstore.New(docs)
	broadcast := hub.New()
	defer broadcast.Close()
	sched := delay.NewScheduler()
	defer sched.Close()

	rt := router.New(store, sched, mailer.LogSender{},
		router.WithDayDuration(a.config.DayDuration))

	rts := realtime.New(ctx, store, rt, broadcast, realtime.Config{
		CampaignID:  campaign.DefaultID,
		CORSOrigins: a.config.CORSOrigins,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/socket.io/", rts.Handler())

	srv := &http.Server{Addr: a.config.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🚀 Campaign server listening.",
			"addr", a.config.Addr, "storage", a.config.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		rts.Close()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed.", "error", err)
	}
	rts.Close()

	a.logger.Debug("App.Run method finished.")
	return nil
}
