package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxJournalContentLength bounds the content of a single entry, in runes.
const MaxJournalContentLength = 10000

// JournalEntry is a free-text entry owned by UserID. Only entries with
// IsShared set are visible to the owner's partner.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    string
	Content   string
	IsShared  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether userID owns the entry.
func (e *JournalEntry) OwnedBy(userID string) bool {
	return e.UserID == userID
}
