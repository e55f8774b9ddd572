// Package retry is an opt-in retry layer for applications embedding the
// Veryfi client. The client itself never retries: a failed call surfaces
// immediately, and whether to try again is the caller's decision. Wrapping
// an operation in Do applies exponential backoff to the failures that can
// plausibly succeed on a second attempt (transport failures, 5xx answers)
// while refusing to retry the ones that cannot (4xx answers, credential and
// payload errors).
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/natserract/veryfi/pkg/veryfi"
)

type config struct {
	maxElapsed      time.Duration
	initialInterval time.Duration
	maxInterval     time.Duration
}

// Option adjusts the backoff schedule.
type Option func(*config)

// WithMaxElapsed bounds the total time spent across attempts.
func WithMaxElapsed(d time.Duration) Option {
	return func(c *config) { c.maxElapsed = d }
}

// WithInitialInterval sets the delay before the first retry.
func WithInitialInterval(d time.Duration) Option {
	return func(c *config) { c.initialInterval = d }
}

// WithMaxInterval caps the delay between retries.
func WithMaxInterval(d time.Duration) Option {
	return func(c *config) { c.maxInterval = d }
}

// Permanent reports whether err is one the service will keep returning no
// matter how often the request is repeated.
func Permanent(err error) bool {
	var apiErr *veryfi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode < 500
	}
	var cfgErr *veryfi.ConfigurationError
	var valErr *veryfi.ValidationError
	var serErr *veryfi.SerializationError
	return errors.As(err, &cfgErr) || errors.As(err, &valErr) || errors.As(err, &serErr)
}

// Do runs operation with exponential backoff until it succeeds, fails
// permanently, or the elapsed budget runs out.
func Do[T any](ctx context.Context, operation func() (T, error), opts ...Option) (T, error) {
	cfg := config{
		maxElapsed:      5 * time.Minute,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = cfg.initialInterval
	expBackoff.MaxInterval = cfg.maxInterval
	expBackoff.Reset()

	wrapped := func() (T, error) {
		result, err := operation()
		if err != nil && Permanent(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(cfg.maxElapsed))
}
