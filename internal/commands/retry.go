package commands

import (
	"context"

	"github.com/goliatone/go-command/runner"

	"github.com/goliatone/go-storefront/internal/content"
)

// RetrySourceErrors is a runner middleware that leaves content source
// failures retryable and marks every other failure as final.
func RetrySourceErrors() runner.Middleware {
	return func(next func(context.Context) error) func(context.Context) error {
		return func(ctx context.Context) error {
			err := next(ctx)
			if err == nil || content.IsSourceError(err) {
				return err
			}
			return finalError{err: err}
		}
	}
}

type finalError struct {
	err error
}

func (e finalError) Error() string { return e.err.Error() }

func (e finalError) Unwrap() error { return e.err }

func (finalError) IsRetryable() bool { return false }
