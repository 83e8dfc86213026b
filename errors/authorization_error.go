package errors

// AuthorizationError is returned when CubeJS responds with HTTP 403.
type AuthorizationError struct {
	msg string
}

func (e *AuthorizationError) Error() string {
	return "CubeJS authorization error: " + e.msg
}

func NewAuthorizationError(text string) error {
	return &AuthorizationError{text}
}
