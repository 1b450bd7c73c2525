package cancellation

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Option configures a Cancellation during construction. Cancellation values
// are only ever built through New or Derive so that fields can be added
// without breaking callers.
type Option func(*Cancellation)

// WithDeadline sets the absolute deadline. The deadline is inclusive: the
// Cancellation is done at the exact deadline instant, not only after it.
func WithDeadline(deadline time.Time) Option {
	return func(c *Cancellation) {
		c.deadline = deadline
		c.hasDeadline = true
	}
}

// WithFlags adds cancellation flags. The flags are shared with the caller and
// any writer holding them; they are not copied.
func WithFlags(flags ...*Flag) Option {
	return func(c *Cancellation) {
		c.flags = append(c.flags, flags...)
	}
}

// WithClock sets the clock used to evaluate the deadline. If not set, the
// system clock is used. The clock must be monotonic, i.e. never report a
// later call as earlier than an earlier call.
func WithClock(clock clock.Clock) Option {
	return func(c *Cancellation) {
		c.clock = clock
	}
}
