package domain

import "fmt"

// ChangeEvent tells subscribers that something owned by UserID changed.
// Events carry no payload; subscribers re-read the current state.
type ChangeEvent struct {
	Kind   ChangeKind
	UserID string
}

// JournalChanged returns the event published after any mutation of the
// user's journal.
func JournalChanged(userID string) ChangeEvent {
	return ChangeEvent{Kind: ChangeJournal, UserID: userID}
}

// LinkChanged returns the event published after the user's partner link
// was set or cleared.
func LinkChanged(userID string) ChangeEvent {
	return ChangeEvent{Kind: ChangeLink, UserID: userID}
}

// Resync returns the event that tells every subscriber to re-read, because
// some events may have been lost.
func Resync() ChangeEvent {
	return ChangeEvent{Kind: ChangeResync}
}

func (e ChangeEvent) String() string {
	if e.Kind == ChangeResync {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s:%s", e.Kind, e.UserID)
}

// Validate checks that the event can be published.
func (e ChangeEvent) Validate() error {
	var errs []FieldError
	if !e.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown change kind"})
	}
	if e.UserID == "" {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
