package log

import (
	"net/http"
	"time"
)

type loggingRoundTripper struct {
	next   http.RoundTripper
	logger Logger
}

// NewLoggingRoundTripper wraps a transport so that every request is traced
// at debug level with its method, url, status and duration. A nil next
// transport falls back to http.DefaultTransport.
func NewLoggingRoundTripper(next http.RoundTripper, logger Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingRoundTripper{next: next, logger: logger}
}

func (t *loggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	if err != nil {
		t.logger.Debug("request failed",
			"method", r.Method,
			"url", r.URL.String(),
			"duration", time.Since(start),
			"error", err)
		return resp, err
	}

	t.logger.Debug("request completed",
		"method", r.Method,
		"url", r.URL.String(),
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return resp, err
}
