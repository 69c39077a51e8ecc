package app

import (
	"context"
	"fmt"

	"github.com/vk/campaignflow/internal/docstore"
	"github.com/vk/campaignflow/internal/memstore"
	"github.com/vk/campaignflow/internal/pgstore"
	"github.com/vk/campaignflow/internal/redisstore"
)

// openDocStore builds the configured document backend. Config validation has
// already guaranteed the backend name and its URL.
func (a *App) openDocStore(ctx context.Context) (docstore.Store, error) {
	switch a.config.Storage {
	case StorageRedis:
		store, err := redisstore.New(ctx, a.config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		a.logger.Info("Connected to Redis.")
		return store, nil
	case StoragePostgres:
		store, err := pgstore.New(ctx, a.config.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		a.logger.Info("Connected to PostgreSQL.")
		return store, nil
	default:
		a.logger.Warn("Using in-memory storage: campaigns are lost on restart.")
		return memstore.New(), nil
	}
}
