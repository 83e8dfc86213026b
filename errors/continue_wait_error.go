package errors

// ContinueWaitError is returned when CubeJS has accepted the query
// asynchronously and has not finished computing it yet. It is retryable.
type ContinueWaitError struct {
	msg string
}

func (e *ContinueWaitError) Error() string {
	return e.msg
}

func NewContinueWaitError() error {
	return &ContinueWaitError{"CubeJS query is not ready yet, continue waiting..."}
}
