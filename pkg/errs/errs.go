package errs

import "fmt"

// ValidationError reports a profile or request field that failed validation
// before reaching the nutrition calculator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// GenerationError means the upstream text-generation service returned
// something we could not turn into a meal plan (non-JSON, malformed shape,
// or the call itself failed).
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("meal plan generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("meal plan generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NotFoundError marks a missing user, profile, goal or food.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}
