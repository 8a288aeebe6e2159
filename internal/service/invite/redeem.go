package invite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/menowell-backend/internal/domain"
	"github.com/heartmarshall/menowell-backend/internal/metrics"
)

// RedeemResult is the outcome of a successful redemption.
type RedeemResult struct {
	// PartnerID is the inviter the acceptor is now linked to.
	PartnerID string
	// Unlinked lists former partners whose link was cleared by the re-pairing.
	Unlinked []string
}

// RedeemInvite links acceptorID with the issuer of code. Either every write
// happens or none does. Afterwards a link change event is published for each
// affected user.
func (s *Service) RedeemInvite(ctx context.Context, code, acceptorID string) (*RedeemResult, error) {
	if acceptorID == "" {
		return nil, domain.ErrUnauthorized
	}

	code = strings.TrimSpace(code)
	if !domain.IsWellFormedInviteCode(code) {
		s.metrics.ObserveInvite(metrics.InviteInvalid)
		return nil, domain.ErrInvalidCode
	}

	var result RedeemResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		inv, err := s.invites.GetByCodeForUpdate(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCode
		}
		if err != nil {
			return domain.NewTransportError("load invite", err)
		}
		if !inv.IsPending() {
			return domain.ErrInvalidCode
		}
		if inv.InviterID == acceptorID {
			return domain.ErrSelfRedemption
		}

		if err := s.users.LockForUpdate(ctx, inv.InviterID, acceptorID); err != nil {
			return domain.NewTransportError("lock users", err)
		}

		unlinked, err := s.users.ClearStalePartners(ctx, inv.InviterID, acceptorID)
		if err != nil {
			return domain.NewTransportError("unlink previous partners", err)
		}

		if err := s.users.SetPartner(ctx, inv.InviterID, acceptorID, nil); err != nil {
			return linkError(err)
		}
		role := domain.UserRolePartner
		if err := s.users.SetPartner(ctx, acceptorID, inv.InviterID, &role); err != nil {
			return linkError(err)
		}

		ok, err := s.invites.Complete(ctx, code, acceptorID, s.now().UTC())
		if err != nil {
			return domain.NewTransportError("complete invite", err)
		}
		if !ok {
			return domain.ErrInvalidCode
		}

		result = RedeemResult{PartnerID: inv.InviterID, Unlinked: unlinked}
		return nil
	})
	if err != nil {
		s.metrics.ObserveInvite(redeemOutcome(err))
		return nil, fmt.Errorf("invite.RedeemInvite: %w", err)
	}

	s.metrics.ObserveInvite(metrics.InviteRedeemed)
	s.log.InfoContext(ctx, "invite redeemed",
		slog.String("inviter_id", result.PartnerID),
		slog.String("acceptor_id", acceptorID),
		slog.Int("unlinked", len(result.Unlinked)))

	events := []domain.ChangeEvent{
		domain.LinkChanged(result.PartnerID),
		domain.LinkChanged(acceptorID),
	}
	for _, id := range result.Unlinked {
		events = append(events, domain.LinkChanged(id))
	}
	s.publish(ctx, events...)

	return &result, nil
}

// linkError keeps a vanished user distinguishable from a store failure.
func linkError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return domain.NewTransportError("link users", err)
}

func redeemOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		return metrics.InviteInvalid
	case errors.Is(err, domain.ErrSelfRedemption):
		return metrics.InviteSelfRedeemed
	default:
		return metrics.InviteFailed
	}
}
