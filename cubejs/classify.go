package cubejs

import (
	"net/http"
	"strings"

	e "github.com/semlayer/go-cubejs/errors"
)

// classifyResponse maps an API response to an error, nil means the body is
// a success payload. The order of the checks is part of the contract: a
// body containing "Continue wait" outranks a 500 or 502 status but never a
// 403 or 400.
func classifyResponse(statusCode int, body string) error {
	if statusCode == http.StatusForbidden {
		return e.NewAuthorizationError(body)
	}
	if statusCode == http.StatusBadRequest {
		return e.NewRequestError(body)
	}
	if strings.Contains(body, "Continue wait") {
		return e.NewContinueWaitError()
	}
	if statusCode == http.StatusBadGateway {
		return e.NewBadGatewayError()
	}
	if statusCode == http.StatusInternalServerError {
		return e.NewServerError(body)
	}
	if statusCode != http.StatusOK {
		return e.NewUnexpectedResponseError(body)
	}
	return nil
}
