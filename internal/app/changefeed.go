package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/menowell-backend/internal/adapter/notify"
	"github.com/heartmarshall/menowell-backend/internal/adapter/notify/pgnotify"
	"github.com/heartmarshall/menowell-backend/internal/adapter/notify/redisbus"
	"github.com/heartmarshall/menowell-backend/internal/config"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// subscriberBuffer is the per-subscriber queue of the in-process hub. Live
// views coalesce, so a short queue is enough.
const subscriberBuffer = 16

// changeFeed is the process-wide source and sink of change events.
type changeFeed interface {
	Publish(ctx context.Context, e domain.ChangeEvent) error
	Subscribe() (<-chan domain.ChangeEvent, func())
	Ready() <-chan struct{}
	Run(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// feedHandle bundles a change feed with its optional health check and
// cleanup.
type feedHandle struct {
	changeFeed
	health pinger
	close  func() error
}

func newChangeFeed(cfg config.NotifyConfig, pool *pgxpool.Pool, onDrop func(), logger *slog.Logger) (*feedHandle, error) {
	hub := notify.NewHub(subscriberBuffer, onDrop)

	switch cfg.Backend {
	case config.NotifyBackendRedis:
		bus, err := redisbus.NewFromURL(cfg.RedisURL, cfg.Channel, hub, logger)
		if err != nil {
			return nil, fmt.Errorf("change feed: %w", err)
		}
		return &feedHandle{changeFeed: bus, health: bus, close: bus.Close}, nil
	case config.NotifyBackendPostgres:
		bus := pgnotify.New(pool, cfg.Channel, hub, logger)
		return &feedHandle{changeFeed: bus, close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("change feed: unknown backend %q", cfg.Backend)
	}
}
