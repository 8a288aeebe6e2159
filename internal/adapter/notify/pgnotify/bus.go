// Package pgnotify carries change events over PostgreSQL LISTEN/NOTIFY.
package pgnotify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/menowell-backend/internal/adapter/notify"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

const (
	minBackoff = 500 * time.Millisecond
	maxBackoff = 30 * time.Second
)

// Bus publishes with pg_notify and keeps one dedicated connection LISTENing
// for the whole process.
type Bus struct {
	pool    *pgxpool.Pool
	channel string
	hub     *notify.Hub
	log     *slog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// New creates a bus on the given channel. Call Run to start receiving.
func New(pool *pgxpool.Pool, channel string, hub *notify.Hub, log *slog.Logger) *Bus {
	return &Bus{
		pool:    pool,
		channel: channel,
		hub:     hub,
		log:     log.With("adapter", "pgnotify"),
		ready:   make(chan struct{}),
	}
}

// Publish sends e to every process listening on the channel.
func (b *Bus) Publish(ctx context.Context, e domain.ChangeEvent) error {
	payload, err := notify.Encode(e)
	if err != nil {
		return err
	}
	if _, err := b.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, b.channel, payload); err != nil {
		return fmt.Errorf("pg_notify %s: %w", e, err)
	}
	return nil
}

// Subscribe registers an in-process subscriber.
func (b *Bus) Subscribe() (<-chan domain.ChangeEvent, func()) {
	return b.hub.Subscribe()
}

// Ready is closed once the first LISTEN succeeded.
func (b *Bus) Ready() <-chan struct{} {
	return b.ready
}

// Run listens until ctx is cancelled, reconnecting with exponential backoff.
// Every successful LISTEN is followed by a resync of all subscribers. On
// return every subscriber channel is closed.
func (b *Bus) Run(ctx context.Context) error {
	defer b.hub.Close()

	backoff := minBackoff
	for {
		listened, err := b.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if listened {
			backoff = minBackoff
		}
		b.log.WarnContext(ctx, "listener disconnected",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", backoff),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *Bus) listen(ctx context.Context) (bool, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire listener connection: %w", err)
	}
	defer func() {
		// A LISTENing connection must not go back into the pool.
		closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = conn.Conn().Close(closeCtx)
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{b.channel}.Sanitize()); err != nil {
		return false, fmt.Errorf("listen %s: %w", b.channel, err)
	}
	// Notifications sent while no connection was listening are gone.
	b.hub.Resync()
	b.readyOnce.Do(func() { close(b.ready) })
	b.log.InfoContext(ctx, "listening for changes", slog.String("channel", b.channel))

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return true, fmt.Errorf("wait for notification: %w", err)
		}

		e, err := notify.Decode(n.Payload)
		if err != nil {
			b.log.WarnContext(ctx, "dropping malformed notification", slog.String("error", err.Error()))
			continue
		}
		b.hub.Dispatch(e)
	}
}
