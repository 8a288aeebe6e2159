// Package devidentity is a sign-in provider for local development. The
// "code" is an email address and the identity is derived from it, with no
// external round trip.
package devidentity

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/heartmarshall/menowell-backend/internal/auth"
	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// SubjectPrefix namespaces development identities inside the user directory.
const SubjectPrefix = "dev:"

// Verifier accepts any well-formed email address as a sign-in code.
type Verifier struct {
	log *slog.Logger
}

// NewVerifier creates a development verifier.
func NewVerifier(logger *slog.Logger) *Verifier {
	return &Verifier{log: logger.With("adapter", "dev_identity")}
}

// Verify turns an email address into an identity. The same address always
// yields the same subject.
func (v *Verifier) Verify(ctx context.Context, code string) (*auth.Identity, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("dev identity: %w", domain.ErrUnauthorized)
	}

	email := strings.ToLower(addr.Address)
	name := addr.Name
	if name == "" {
		name = email[:strings.IndexByte(email, '@')]
	}

	v.log.WarnContext(ctx, "dev sign-in", slog.String("email", email))

	return &auth.Identity{
		Subject: SubjectPrefix + email,
		Email:   email,
		Name:    name,
	}, nil
}
