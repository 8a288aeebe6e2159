// Package redisbus carries change events over Redis pub/sub.
package redisbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/menowell-backend/internal/adapter/notify"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// Bus publishes to a Redis channel and keeps one subscription open for the
// whole process. go-redis reconnects the subscription on its own; every
// confirmed resubscription resyncs all subscribers.
type Bus struct {
	client  *redis.Client
	channel string
	hub     *notify.Hub
	log     *slog.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewFromURL connects to Redis and creates a bus on the given channel.
func NewFromURL(redisURL, channel string, hub *notify.Hub, log *slog.Logger) (*Bus, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return New(client, channel, hub, log), nil
}

// New creates a bus from an existing Redis client.
func New(client *redis.Client, channel string, hub *notify.Hub, log *slog.Logger) *Bus {
	return &Bus{
		client:  client,
		channel: channel,
		hub:     hub,
		log:     log.With("adapter", "redisbus"),
		ready:   make(chan struct{}),
	}
}

// Publish sends e to every process subscribed to the channel.
func (b *Bus) Publish(ctx context.Context, e domain.ChangeEvent) error {
	payload, err := notify.Encode(e)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", e, err)
	}
	return nil
}

// Subscribe registers an in-process subscriber.
func (b *Bus) Subscribe() (<-chan domain.ChangeEvent, func()) {
	return b.hub.Subscribe()
}

// Ready is closed once the subscription is confirmed by the server.
func (b *Bus) Ready() <-chan struct{} {
	return b.ready
}

// Ping checks if Redis is reachable.
func (b *Bus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (b *Bus) Close() error {
	return b.client.Close()
}

// Run receives until ctx is cancelled. On return every subscriber channel is
// closed.
func (b *Bus) Run(ctx context.Context) error {
	defer b.hub.Close()

	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	b.readyOnce.Do(func() { close(b.ready) })
	b.log.InfoContext(ctx, "listening for changes", slog.String("channel", b.channel))

	msgs := sub.ChannelWithSubscriptions()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			b.receive(ctx, m)
		}
	}
}

func (b *Bus) receive(ctx context.Context, m any) {
	switch m := m.(type) {
	case *redis.Subscription:
		if m.Kind != "subscribe" {
			return
		}
		// Messages published while the connection was down are gone.
		b.log.InfoContext(ctx, "resubscribed", slog.String("channel", m.Channel))
		b.hub.Resync()
	case *redis.Message:
		e, err := notify.Decode(m.Payload)
		if err != nil {
			b.log.WarnContext(ctx, "dropping malformed message", slog.String("error", err.Error()))
			return
		}
		b.hub.Dispatch(e)
	}
}
