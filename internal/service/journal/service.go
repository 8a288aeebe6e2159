// Package journal implements the journal entry operations of a single owner.
package journal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// entryRepo defines the journal store operations needed by the service.
type entryRepo interface {
	List(ctx context.Context, f domain.JournalFilter) ([]domain.JournalEntry, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.JournalEntry, error)
	Create(ctx context.Context, e domain.JournalEntry) (*domain.JournalEntry, error)
	SetShared(ctx context.Context, userID string, id uuid.UUID, shared bool, at time.Time) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// publisher announces changes to live views.
type publisher interface {
	Publish(ctx context.Context, e domain.ChangeEvent) error
}

// Service implements journal operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	events  publisher
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewService creates a new journal service instance.
func NewService(logger *slog.Logger, entries entryRepo, events publisher) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		events:  events,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// changed tells the owner's partner view to refresh. A lost event only
// delays the view, so failures are logged.
func (s *Service) changed(ctx context.Context, userID string) {
	e := domain.JournalChanged(userID)
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish change event failed",
			slog.String("event", e.String()),
			slog.String("error", err.Error()))
	}
}

// storeError passes domain outcomes through and marks everything else as a
// transport failure.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	return domain.NewTransportError(op, err)
}
