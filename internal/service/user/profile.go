package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// Profile is the signed-in user's record plus their partner, if any.
type Profile struct {
	User    *domain.User
	Partner *domain.User
}

// GetMe returns the user's record and partner. A dangling partner reference
// is reported as no partner.
func (s *Service) GetMe(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", lookupError(err))
	}

	profile := &Profile{User: u}
	if !u.IsLinked() {
		return profile, nil
	}

	partner, err := s.users.GetByID(ctx, *u.PartnerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("user.GetMe partner: %w", lookupError(err))
	default:
		profile.Partner = partner
	}
	return profile, nil
}

func lookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return domain.NewTransportError("load user", err)
}
