package retry

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/cschleiden/go-cancel/cancellation"
	"github.com/cschleiden/go-cancel/log"
)

// ErrCanceled is returned by Do when the given Cancellation reports done
// before the operation has succeeded.
var ErrCanceled = errors.New("retry canceled")

// Do retries op under exponential backoff until it succeeds. Between
// attempts, both the context and the Cancellation are checked: a done context
// ends the retry loop with the context's error, a done Cancellation with
// ErrCanceled, wrapping the error of the last attempt if there was one. When
// MaxElapsedTime is set and exceeded, the error of the last attempt is
// returned.
func Do(ctx context.Context, c cancellation.Cancellation, op func(ctx context.Context) error, opts ...Option) error {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	b := backoff.ExponentialBackOff{
		InitialInterval:     options.InitialInterval,
		MaxInterval:         options.MaxInterval,
		Multiplier:          options.Multiplier,
		RandomizationFactor: options.RandomizationFactor,
		MaxElapsedTime:      options.MaxElapsedTime,
		Stop:                backoff.Stop,
		Clock:               options.Clock,
	}
	b.Reset()

	ticker := backoff.NewTicker(&b)
	defer ticker.Stop()

	var lastErr error
	attempt := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case _, ok := <-ticker.C:
			if !ok {
				// Backoff gave up
				if lastErr != nil {
					return fmt.Errorf("retry timed out: %w", lastErr)
				}

				return errors.New("retry timed out")
			}

			if c.IsDone() {
				if lastErr != nil {
					return fmt.Errorf("%w: %w", ErrCanceled, lastErr)
				}

				return ErrCanceled
			}

			attempt++

			if err := op(ctx); err != nil {
				options.Logger.Debug("Operation failed, retrying", log.AttemptKey, attempt, "error", err)

				lastErr = err
				continue
			}

			return nil
		}
	}
}
