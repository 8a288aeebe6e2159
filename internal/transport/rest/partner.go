package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/service/sharing"
)

// LiveView is an open shared view; see sharing.View.
type LiveView interface {
	Latest() sharing.Snapshot
	Changes() <-chan struct{}
	Done() <-chan struct{}
	Stop()
}

// ViewResolver opens a live shared view for a viewer.
type ViewResolver func(ctx context.Context, viewerID string) (LiveView, error)

type snapshotService interface {
	SharedSnapshot(ctx context.Context, viewerID string) (*sharing.Snapshot, error)
}

// SharingViews adapts the sharing service to a ViewResolver. Views open for
// unlinked viewers too, so a pairing made later reaches an open stream.
func SharingViews(svc *sharing.Service) ViewResolver {
	return func(ctx context.Context, viewerID string) (LiveView, error) {
		v, err := svc.WatchSharedView(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// PartnerHandler serves the partner's shared entries, once or as a stream.
type PartnerHandler struct {
	svc       snapshotService
	views     ViewResolver
	heartbeat time.Duration
	log       *slog.Logger
}

// NewPartnerHandler creates a PartnerHandler. heartbeat is the interval of
// keep-alive comments on idle streams.
func NewPartnerHandler(svc snapshotService, views ViewResolver, heartbeat time.Duration, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		svc:       svc,
		views:     views,
		heartbeat: heartbeat,
		log:       logger.With("handler", "partner"),
	}
}

// Entries handles GET /partner/entries.
func (h *PartnerHandler) Entries(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.SharedSnapshot(r.Context(), userIDFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSharedViewResponse(*snap))
}

// Stream handles GET /partner/entries/stream as server-sent events. The
// current view is sent on connect and again after every change. Having no
// partner sends an "unlinked" event and a failed re-read an "unavailable"
// event; the stream stays open in both cases.
func (h *PartnerHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view, err := h.views(ctx, userIDFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer view.Stop()

	rc := http.NewResponseController(w)
	// Streams outlive the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := h.send(w, rc, view.Latest()); err != nil {
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-view.Done():
			return
		case _, ok := <-view.Changes():
			if !ok {
				return
			}
			if err := h.send(w, rc, view.Latest()); err != nil {
				return
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (h *PartnerHandler) send(w http.ResponseWriter, rc *http.ResponseController, snap sharing.Snapshot) error {
	event, payload := "snapshot", any(nil)
	switch {
	case errors.Is(snap.Err, domain.ErrNotLinked):
		event, payload = "unlinked", errorResponse{Error: "not linked"}
	case snap.Err != nil || !snap.Linked():
		event, payload = "unavailable", errorResponse{Error: "shared entries temporarily unavailable"}
	default:
		payload = toSharedViewResponse(snap)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("encode stream event", slog.String("error", err.Error()))
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if err := rc.Flush(); err != nil {
		h.log.Debug("stream flush failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
