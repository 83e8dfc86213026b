package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/semlayer/go-cubejs/log"
)

// Policy controls how often a failed operation is rerun and how long to
// wait in between. MaxAttempts counts the initial attempt, a value of 1
// disables retries. ShouldRetry decides whether an error is worth
// retrying, a nil predicate retries every error.
type Policy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxAttempts     int
	ShouldRetry     func(error) bool
}

// DefaultPolicy waits 1s, 2s, 4s and 8s between the five attempts it
// allows, capping the wait at 30s.
func DefaultPolicy() Policy {
	return Policy{
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2,
		MaxAttempts:     5,
	}
}

// Do runs op until it succeeds, a non retryable error occurs, the attempt
// budget is exhausted or ctx is cancelled. The last error seen is returned
// unwrapped.
func (p Policy) Do(ctx context.Context, logger log.Logger, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	var retries uint64
	if p.MaxAttempts > 1 {
		retries = uint64(p.MaxAttempts - 1)
	}

	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if p.ShouldRetry != nil && !p.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		logger.Debug("retrying request", "wait", wait, "error", err)
	}

	return backoff.RetryNotify(wrapped, backoff.WithMaxRetries(backoff.WithContext(b, ctx), retries), notify)
}
