package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/menowell-backend/internal/auth"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Ensure(ctx context.Context, u domain.User) (*domain.User, bool, error)
}

// identityVerifier turns a provider-specific code into an identity.
type identityVerifier interface {
	Verify(ctx context.Context, code string) (*auth.Identity, error)
}

// Verifiers maps a provider name to its verifier.
type Verifiers = map[string]identityVerifier

// tokenManager defines the session token operations needed by auth service.
type tokenManager interface {
	GenerateAccessToken(userID string) (string, time.Time, error)
	ValidateAccessToken(token string) (string, error)
}

// Service implements sign-in and token validation.
type Service struct {
	log       *slog.Logger
	users     userRepo
	verifiers Verifiers
	tokens    tokenManager
	now       func() time.Time
}

// NewService creates a new auth service instance. verifiers maps a provider
// name to its verifier; only these providers are accepted.
func NewService(
	logger *slog.Logger,
	users userRepo,
	verifiers Verifiers,
	tokens tokenManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		verifiers: verifiers,
		tokens:    tokens,
		now:       time.Now,
	}
}
