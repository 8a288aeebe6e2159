package invite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/metrics"
)

// IssueOrReuseInvite returns the inviter's pending code, creating one when
// none exists. A freshly drawn code that is already taken is redrawn up to
// the configured number of attempts. When a concurrent call wins the race
// for the inviter's single pending slot its code is returned.
func (s *Service) IssueOrReuseInvite(ctx context.Context, inviterID string) (string, error) {
	if inviterID == "" {
		return "", domain.ErrUnauthorized
	}

	code, err := s.pendingCode(ctx, inviterID)
	if err != nil {
		s.metrics.ObserveInvite(metrics.InviteFailed)
		return "", err
	}
	if code != "" {
		s.metrics.ObserveInvite(metrics.InviteReused)
		return code, nil
	}

	for attempt := 1; attempt <= s.cfg.MaxIssueAttempts; attempt++ {
		code, err = domain.GenerateInviteCode(s.entropy)
		if err != nil {
			s.metrics.ObserveInvite(metrics.InviteFailed)
			return "", fmt.Errorf("invite.IssueOrReuseInvite: %w", err)
		}

		err = s.invites.Create(ctx, domain.Invite{
			Code:      code,
			InviterID: inviterID,
			Status:    domain.InviteStatusPending,
			CreatedAt: s.now().UTC(),
		})
		switch {
		case err == nil:
			s.metrics.ObserveInvite(metrics.InviteIssued)
			s.log.InfoContext(ctx, "invite issued",
				slog.String("inviter_id", inviterID),
				slog.Int("attempt", attempt))
			return code, nil

		case errors.Is(err, domain.ErrAlreadyExists):
			s.log.DebugContext(ctx, "invite code collision", slog.Int("attempt", attempt))
			continue

		case errors.Is(err, domain.ErrConflict):
			existing, err := s.pendingCode(ctx, inviterID)
			if err != nil {
				s.metrics.ObserveInvite(metrics.InviteFailed)
				return "", err
			}
			if existing != "" {
				s.metrics.ObserveInvite(metrics.InviteReused)
				return existing, nil
			}
			// The concurrent invite was redeemed in between; draw again.
			continue

		default:
			s.metrics.ObserveInvite(metrics.InviteFailed)
			return "", fmt.Errorf("invite.IssueOrReuseInvite: %w", domain.NewTransportError("create invite", err))
		}
	}

	s.metrics.ObserveInvite(metrics.InviteFailed)
	return "", fmt.Errorf("invite.IssueOrReuseInvite: %w",
		domain.NewTransportError("create invite", fmt.Errorf("no free code after %d attempts", s.cfg.MaxIssueAttempts)))
}

// pendingCode returns the inviter's pending code or "" when there is none.
func (s *Service) pendingCode(ctx context.Context, inviterID string) (string, error) {
	inv, err := s.invites.GetPendingByInviter(ctx, inviterID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("invite.IssueOrReuseInvite: %w", domain.NewTransportError("create invite", err))
	}
	return inv.Code, nil
}
