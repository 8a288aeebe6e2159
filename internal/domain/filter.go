package domain

// Journal listing bounds.
const (
	DefaultJournalLimit = 100
	MaxJournalLimit     = 500
)

// JournalFilter selects journal entries of one owner, newest first.
type JournalFilter struct {
	// UserID is the owner. Required.
	UserID string

	// SharedOnly restricts the result to entries visible to the partner.
	SharedOnly bool

	// Limit is the maximum number of entries to return. Default: 100, max: 500.
	Limit int

	// Offset is the number of entries to skip.
	Offset int

	// All returns every matching entry. Limit and Offset are ignored.
	All bool
}

// Normalize applies defaults and clamps values.
func (f *JournalFilter) Normalize() {
	if f.All {
		f.Limit, f.Offset = 0, 0
		return
	}
	if f.Limit <= 0 {
		f.Limit = DefaultJournalLimit
	}
	if f.Limit > MaxJournalLimit {
		f.Limit = MaxJournalLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
