package errors

// RequestError is returned when CubeJS responds with HTTP 400.
type RequestError struct {
	msg string
}

func (e *RequestError) Error() string {
	return "CubeJS 400 request error: " + e.msg
}

func NewRequestError(text string) error {
	return &RequestError{text}
}
