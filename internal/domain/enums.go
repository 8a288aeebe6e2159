package domain

// UserRole distinguishes the account that issued an invite from the one that
// redeemed it.
type UserRole string

const (
	UserRolePrimary UserRole = "primary"
	UserRolePartner UserRole = "partner"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRolePrimary, UserRolePartner:
		return true
	}
	return false
}

// InviteStatus is the lifecycle state of an invite code.
// pending -> completed is the only transition.
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusCompleted InviteStatus = "completed"
)

func (s InviteStatus) String() string { return string(s) }

func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusCompleted:
		return true
	}
	return false
}

// AnalysisFocus tells the sentiment service which surface produced the text.
type AnalysisFocus string

const (
	AnalysisFocusChat    AnalysisFocus = "AI Chat"
	AnalysisFocusJournal AnalysisFocus = "Journal Analysis"
)

func (f AnalysisFocus) String() string { return string(f) }

func (f AnalysisFocus) IsValid() bool {
	switch f {
	case AnalysisFocusChat, AnalysisFocusJournal:
		return true
	}
	return false
}

// RiskTier is the normalized form of a crisis assessment risk level.
type RiskTier string

const (
	RiskTierHigh   RiskTier = "high"
	RiskTierMedium RiskTier = "medium"
	RiskTierLow    RiskTier = "low"
)

func (t RiskTier) String() string { return string(t) }

// ChangeKind identifies what a change event refers to.
type ChangeKind string

const (
	// ChangeJournal fires when any journal entry owned by the user changes.
	ChangeJournal ChangeKind = "journal.changed"
	// ChangeLink fires when the user's partner link changes.
	ChangeLink ChangeKind = "user.linked"
	// ChangeResync is raised locally when events may have been lost. It is
	// never published.
	ChangeResync ChangeKind = "resync"
)

func (k ChangeKind) String() string { return string(k) }

// IsValid reports whether k can be published.
func (k ChangeKind) IsValid() bool {
	switch k {
	case ChangeJournal, ChangeLink:
		return true
	}
	return false
}
