package sharing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// View is a live shared view. Latest always holds the most recent snapshot;
// Changes signals that it was replaced. Intermediate snapshots may be skipped.
type View struct {
	viewerID string

	mu     sync.RWMutex
	latest Snapshot

	changes chan struct{}
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Latest returns the current snapshot.
func (v *View) Latest() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.latest
}

// Changes receives a value after Latest changed. It is closed when the view
// stops.
func (v *View) Changes() <-chan struct{} {
	return v.changes
}

// Done is closed when the view stopped.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Stop ends the view and waits for its goroutine to exit. It is safe to call
// more than once.
func (v *View) Stop() {
	v.once.Do(func() { close(v.stop) })
	<-v.done
}

func (v *View) set(snap Snapshot) {
	v.mu.Lock()
	v.latest = snap
	v.mu.Unlock()

	select {
	case v.changes <- struct{}{}:
	default:
	}
}

func (v *View) partnerID() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.latest.Partner == nil {
		return ""
	}
	return v.latest.Partner.ID
}

// ResolveSharedView opens a live view of the viewer's partner's shared
// entries. It fails with ErrNotLinked when the viewer has no partner at open
// time. The view follows re-pairing and reports a later unlink through
// Snapshot.Err. It stops when ctx is done or Stop is called.
func (s *Service) ResolveSharedView(ctx context.Context, viewerID string) (*View, error) {
	v, err := s.open(ctx, viewerID, false)
	if err != nil {
		return nil, fmt.Errorf("sharing.ResolveSharedView: %w", err)
	}
	return v, nil
}

// WatchSharedView is ResolveSharedView for a viewer who may not be linked
// yet. The view then starts with Snapshot.Err set to ErrNotLinked and shows
// the partner as soon as a pairing happens.
func (s *Service) WatchSharedView(ctx context.Context, viewerID string) (*View, error) {
	v, err := s.open(ctx, viewerID, true)
	if err != nil {
		return nil, fmt.Errorf("sharing.WatchSharedView: %w", err)
	}
	return v, nil
}

func (s *Service) open(ctx context.Context, viewerID string, allowUnlinked bool) (*View, error) {
	if viewerID == "" {
		return nil, domain.ErrUnauthorized
	}

	// Subscribe first so nothing that happens during the initial read is lost.
	events, cancel := s.feed.Subscribe()

	snap, err := s.resolve(ctx, viewerID)
	if allowUnlinked && errors.Is(err, domain.ErrNotLinked) {
		snap, err = &Snapshot{Err: domain.ErrNotLinked, At: s.now().UTC()}, nil
	}
	if err != nil {
		cancel()
		return nil, err
	}

	v := &View{
		viewerID: viewerID,
		latest:   *snap,
		changes:  make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	s.gauge.ViewOpened()
	go s.follow(ctx, v, events, cancel)

	return v, nil
}

func (s *Service) follow(ctx context.Context, v *View, events <-chan domain.ChangeEvent, cancel func()) {
	defer func() {
		cancel()
		s.gauge.ViewClosed()
		close(v.changes)
		close(v.done)
	}()

	var (
		retry  <-chan time.Time
		delay  = s.retryDelay
		failed domain.ChangeKind
	)
	for {
		var kind domain.ChangeKind
		select {
		case <-ctx.Done():
			return
		case <-v.stop:
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if !s.affects(v, e) {
				continue
			}
			kind = e.Kind
		case <-retry:
			kind = failed
		}

		if s.refresh(ctx, v, kind) {
			retry, delay, failed = nil, s.retryDelay, ""
			continue
		}
		if failed != domain.ChangeLink && failed != domain.ChangeResync {
			failed = kind
		}
		retry = time.After(delay)
		delay = min(delay*2, maxRetryDelay)
	}
}

// affects reports whether e can change what v shows.
func (s *Service) affects(v *View, e domain.ChangeEvent) bool {
	switch e.Kind {
	case domain.ChangeJournal:
		partner := v.partnerID()
		return partner != "" && e.UserID == partner
	case domain.ChangeLink:
		return e.UserID == v.viewerID
	case domain.ChangeResync:
		return true
	}
	return false
}

// refresh re-resolves v after an event of the given kind. It reports false
// when the store failed and the refresh must be retried.
func (s *Service) refresh(ctx context.Context, v *View, kind domain.ChangeKind) bool {
	snap, err := s.resolve(ctx, v.viewerID)
	switch {
	case err == nil:
		v.set(*snap)
		return true
	case errors.Is(err, domain.ErrNotLinked):
		v.set(Snapshot{Err: domain.ErrNotLinked, At: s.now().UTC()})
		return true
	case ctx.Err() != nil:
		return true
	}

	s.log.WarnContext(ctx, "refresh shared view failed",
		slog.String("viewer_id", v.viewerID),
		slog.String("trigger", kind.String()),
		slog.String("error", err.Error()))

	// After a journal change the partner is known and the last snapshot stays
	// valid. Any other trigger may have changed the partner, so the previous
	// partner's entries must go.
	if kind != domain.ChangeJournal {
		v.set(Snapshot{Err: err, At: s.now().UTC()})
	}
	return false
}
