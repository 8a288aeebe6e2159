// Package invite implements the invite-linking protocol: issuing a six-digit
// code and redeeming it to pair two accounts.
package invite

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/config"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// inviteRepo defines the invite ledger operations needed by the service.
type inviteRepo interface {
	GetPendingByInviter(ctx context.Context, inviterID string) (*domain.Invite, error)
	GetByCodeForUpdate(ctx context.Context, code string) (*domain.Invite, error)
	Create(ctx context.Context, inv domain.Invite) error
	Complete(ctx context.Context, code, acceptorID string, at time.Time) (bool, error)
}

// userRepo defines the user directory operations needed by the service.
type userRepo interface {
	LockForUpdate(ctx context.Context, ids ...string) error
	ClearStalePartners(ctx context.Context, a, b string) ([]string, error)
	SetPartner(ctx context.Context, id, partnerID string, role *domain.UserRole) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// publisher announces changes to live views.
type publisher interface {
	Publish(ctx context.Context, e domain.ChangeEvent) error
}

// outcomeRecorder counts invite outcomes.
type outcomeRecorder interface {
	ObserveInvite(outcome string)
}

// Service implements invite issuance and redemption.
type Service struct {
	log     *slog.Logger
	invites inviteRepo
	users   userRepo
	tx      txManager
	events  publisher
	metrics outcomeRecorder
	cfg     config.InviteConfig

	// entropy feeds code generation; nil means crypto/rand.
	entropy io.Reader
	now     func() time.Time
}

// NewService creates a new invite service instance.
func NewService(
	logger *slog.Logger,
	invites inviteRepo,
	users userRepo,
	tx txManager,
	events publisher,
	metrics outcomeRecorder,
	cfg config.InviteConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "invite"),
		invites: invites,
		users:   users,
		tx:      tx,
		events:  events,
		metrics: metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *Service) publish(ctx context.Context, events ...domain.ChangeEvent) {
	for _, e := range events {
		if err := s.events.Publish(ctx, e); err != nil {
			s.log.WarnContext(ctx, "publish change event failed",
				slog.String("event", e.String()),
				slog.String("error", err.Error()))
		}
	}
}
