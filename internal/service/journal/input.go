package journal

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// CreateEntryInput holds parameters for creating a journal entry.
type CreateEntryInput struct {
	Content  string
	IsShared bool
}

// Validate validates the create entry input. Content is checked after
// trimming surrounding whitespace.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(content) > domain.MaxJournalContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput holds paging parameters for listing entries.
type ListEntriesInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > domain.MaxJournalLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
