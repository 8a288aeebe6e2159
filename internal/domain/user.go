package domain

import "time"

// User is the per-identity record kept by the user directory. ID is the
// subject assigned by the identity provider and never changes.
type User struct {
	ID          string
	Email       string
	DisplayName string
	PhotoURL    *string
	Role        UserRole
	PartnerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser returns the record created on first observed sign-in.
func NewUser(id, email, displayName string, photoURL *string, now time.Time) User {
	return User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		Role:        UserRolePrimary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsLinked reports whether the user currently has a partner.
func (u *User) IsLinked() bool {
	return u.PartnerID != nil && *u.PartnerID != ""
}

// LinkedTo reports whether the user's partner is id.
func (u *User) LinkedTo(id string) bool {
	return u.IsLinked() && *u.PartnerID == id
}
