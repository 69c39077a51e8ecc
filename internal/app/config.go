package app

import (
	"errors"
	"fmt"
	"time"
)

// Storage backend names accepted by Config.Storage.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Addr is the listen address for the HTTP server hosting both the
	// health endpoint and the Socket.IO transport.
	Addr string

	// Storage selects the document backend: memory, redis, or postgres.
	Storage     string
	RedisURL    string
	PostgresURL string

	// CORSOrigins lists the browser origins allowed to connect.
	CORSOrigins []string

	LogFormat string
	LogLevel  string

	// DayDuration is the wall-clock length of one campaign "day" used by
	// delay nodes. Zero keeps the router default.
	DayDuration time.Duration
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Addr == "" {
		return nil, errors.New("Addr is a required configuration field and cannot be empty")
	}

	switch cfg.Storage {
	case StorageMemory:
	case StorageRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis storage requires a redis URL")
		}
	case StoragePostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("postgres storage requires a postgres URL")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q: must be 'memory', 'redis', or 'postgres'", cfg.Storage)
	}

	return &cfg, nil
}
