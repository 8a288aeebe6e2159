package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// SignIn verifies the code with the named provider, creates the user record
// on first sign-in and issues an access token. An existing record keeps its
// role and partner.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	if err := input.Validate(s.enabled); err != nil {
		return nil, err
	}

	identity, err := s.verifiers[input.Provider].Verify(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn verify: %w", err)
	}
	if identity.Subject == "" {
		return nil, fmt.Errorf("auth.SignIn verify: empty subject: %w", domain.ErrUnauthorized)
	}

	now := s.now().UTC()
	user, created, err := s.users.Ensure(ctx, domain.NewUser(
		identity.Subject,
		strings.ToLower(strings.TrimSpace(identity.Email)),
		strings.TrimSpace(identity.Name),
		identity.AvatarURL,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn ensure user: %w", domain.NewTransportError("create user", err))
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID),
		slog.String("provider", input.Provider),
		slog.Bool("created", created))

	return &SignInResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		Created:     created,
	}, nil
}

// ValidateToken returns the user id carried by a valid access token.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("auth.ValidateToken: %w: %w", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

// Providers lists the enabled provider names.
func (s *Service) Providers() []string {
	out := make([]string, 0, len(s.verifiers))
	for name := range s.verifiers {
		out = append(out, name)
	}
	return out
}

func (s *Service) enabled(provider string) bool {
	v, ok := s.verifiers[provider]
	return ok && v != nil
}
