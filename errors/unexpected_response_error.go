package errors

// UnexpectedResponseError is returned when CubeJS responds with a status
// code outside the documented set.
type UnexpectedResponseError struct {
	msg string
}

func (e *UnexpectedResponseError) Error() string {
	return "CubeJS unexpected response: " + e.msg
}

func NewUnexpectedResponseError(text string) error {
	return &UnexpectedResponseError{text}
}
