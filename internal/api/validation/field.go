package validation

import "strings"

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Summary joins field messages into one line for plain-text responses.
func Summary(errs []FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return "Invalid submission: " + strings.Join(msgs, "; ")
}

func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}
