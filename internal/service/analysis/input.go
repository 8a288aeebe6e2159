package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/menowell-backend/internal/domain"
)

// MaxTextLength bounds the text submitted for analysis, in runes.
const MaxTextLength = domain.MaxJournalContentLength

// AnalyzeInput holds parameters for an analysis request.
type AnalyzeInput struct {
	Text string
	// Focus defaults to the chat focus when empty.
	Focus string
}

func (i AnalyzeInput) focus() domain.AnalysisFocus {
	if i.Focus == "" {
		return domain.AnalysisFocusChat
	}
	return domain.AnalysisFocus(i.Focus)
}

// Validate validates the analysis input.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if !i.focus().IsValid() {
		errs = append(errs, domain.FieldError{Field: "focus", Message: "must be \"AI Chat\" or \"Journal Analysis\""})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
