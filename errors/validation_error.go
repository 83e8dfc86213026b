package errors

// ValidationError is returned when a query model violates one of its
// invariants. It is raised before any network activity and never retried.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(text string) error {
	return &ValidationError{text}
}
