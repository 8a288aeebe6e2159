package auth

import "github.com/heartmarshall/menowell-backend/internal/domain"

// SignInInput holds parameters for the sign-in operation.
type SignInInput struct {
	Provider string
	Code     string
}

// Validate validates the sign-in input against the enabled providers.
func (i SignInInput) Validate(enabled func(provider string) bool) error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if !enabled(i.Provider) {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 4096 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
