// Package notify fans change events out to in-process subscribers. The
// pgnotify and redisbus subpackages feed it from a shared broker so every
// replica sees every change.
package notify

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Hub delivers each dispatched event to every current subscriber without
// blocking. When a subscriber's buffer is full its oldest pending event is
// evicted and a domain.Resync event is queued in its place, so the
// subscriber re-reads everything after it caught up.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan domain.ChangeEvent
	next   uint64
	buffer int
	closed bool
	onDrop func()
}

// NewHub creates a hub with the given per-subscriber buffer. onDrop, if not
// nil, is called for every overflow of a subscriber.
func NewHub(buffer int, onDrop func()) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[uint64]chan domain.ChangeEvent),
		buffer: buffer,
		onDrop: onDrop,
	}
}

// Subscribe registers a new subscriber. The returned cancel func removes it
// and closes its channel; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan domain.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.ChangeEvent, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.next
	h.next++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// Dispatch hands e to every subscriber.
func (h *Hub) Dispatch(e domain.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			h.overflow(ch)
		}
	}
}

// Resync tells every subscriber to re-read, after events may have been lost
// upstream (a broker reconnect).
func (h *Hub) Resync() {
	h.Dispatch(domain.Resync())
}

// overflow replaces the oldest pending event of ch with a resync. The hub is
// the only sender and holds mu, so after one receive the send cannot block.
func (h *Hub) overflow(ch chan domain.ChangeEvent) {
	if h.onDrop != nil {
		h.onDrop()
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- domain.Resync():
	default:
	}
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close closes every subscriber channel. Later subscribers get a closed
// channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

type wireEvent struct {
	Kind   string `json:"kind"`
	UserID string `json:"user_id"`
}

// Encode serializes e for a broker message.
func Encode(e domain.ChangeEvent) (string, error) {
	if err := e.Validate(); err != nil {
		return "", fmt.Errorf("encode change event: %w", err)
	}
	b, err := json.Marshal(wireEvent{Kind: string(e.Kind), UserID: e.UserID})
	if err != nil {
		return "", fmt.Errorf("encode change event: %w", err)
	}
	return string(b), nil
}

// Decode parses a broker message produced by Encode.
func Decode(payload string) (domain.ChangeEvent, error) {
	var w wireEvent
	if err := json.Unmarshal([]byte(payload), &w); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	e := domain.ChangeEvent{Kind: domain.ChangeKind(w.Kind), UserID: w.UserID}
	if err := e.Validate(); err != nil {
		return domain.ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	return e, nil
}
