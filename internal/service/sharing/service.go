// Package sharing resolves what a viewer may see of their partner's journal:
// the partner's profile and the entries the partner marked shared.
package sharing

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// userRepo defines the user directory operations needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// entryRepo defines the journal store operations needed by the service.
type entryRepo interface {
	List(ctx context.Context, f domain.JournalFilter) ([]domain.JournalEntry, error)
}

// txManager runs the reads of one snapshot against a single database snapshot.
type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// subscriber delivers change events of every user.
type subscriber interface {
	Subscribe() (<-chan domain.ChangeEvent, func())
}

// viewGauge tracks open views.
type viewGauge interface {
	ViewOpened()
	ViewClosed()
}

// Failed live view refreshes are retried with exponential backoff.
const (
	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
)

// Service implements the shared-visibility query.
type Service struct {
	log     *slog.Logger
	users   userRepo
	entries entryRepo
	tx      txManager
	feed    subscriber
	gauge   viewGauge
	now     func() time.Time

	retryDelay time.Duration
}

// NewService creates a new sharing service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	entries entryRepo,
	tx txManager,
	feed subscriber,
	gauge viewGauge,
) *Service {
	return &Service{
		log:     logger.With("service", "sharing"),
		users:   users,
		entries: entries,
		tx:      tx,
		feed:    feed,
		gauge:   gauge,
		now:     time.Now,

		retryDelay: defaultRetryDelay,
	}
}
