package errors

// BadGatewayError is returned when CubeJS responds with HTTP 502, commonly
// while the deployment is scaling. It is retryable.
type BadGatewayError struct {
	msg string
}

func (e *BadGatewayError) Error() string {
	return e.msg
}

func NewBadGatewayError() error {
	return &BadGatewayError{"CubeJS server returned 502 bad gateway, retrying..."}
}
