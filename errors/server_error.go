package errors

// ServerError is returned when CubeJS responds with HTTP 500.
type ServerError struct {
	msg string
}

func (e *ServerError) Error() string {
	return "CubeJS server error: " + e.msg
}

func NewServerError(text string) error {
	return &ServerError{text}
}
