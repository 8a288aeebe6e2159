package auth

import (
	"time"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// SignInResult holds the session issued by a successful sign-in.
type SignInResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
	// Created reports whether this sign-in created the user record.
	Created bool
}
