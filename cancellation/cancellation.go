package cancellation

import (
	"time"

	"github.com/benbjohnson/clock"
)

// A Cancellation is an immutable view into the cancellation status of a unit
// of work. It combines an optional absolute deadline with any number of shared
// cancellation flags, and answers a single question: should this in-flight
// operation stop now?
//
// Cancellation is a value type and cheap to copy. Copies share the underlying
// flags, so a flag set through any holder is observed by all copies. The
// deadline and the set of flags are fixed at construction; composition with a
// parent's sources happens once, via Derive, before consumers see the value.
//
// The zero value has no deadline and no flags and is never done.
type Cancellation struct {
	deadline    time.Time
	hasDeadline bool

	flags []*Flag

	clock clock.Clock
}

// New returns a Cancellation configured with the given options. It accepts
// any combination of options, including none: New() is equivalent to
// Background().
func New(opts ...Option) Cancellation {
	var c Cancellation

	for _, opt := range opts {
		opt(&c)
	}

	if c.hasDeadline && c.clock == nil {
		c.clock = clock.New()
	}

	return c
}

// Background returns a Cancellation that is never done. It has no deadline
// and no flags, and is typically used for top-level work that cannot be
// canceled.
func Background() Cancellation {
	return Cancellation{}
}

// Derive combines a parent Cancellation with additional sources into a new
// one. The result observes all of the parent's flags plus any flags added via
// options, and of the parent's and the added deadline the earlier one wins; a
// child can never outlive or mask its parent's deadline. The parent's clock is
// kept unless WithClock overrides it.
func Derive(parent Cancellation, opts ...Option) Cancellation {
	var c Cancellation

	for _, opt := range opts {
		opt(&c)
	}

	if parent.hasDeadline && (!c.hasDeadline || parent.deadline.Before(c.deadline)) {
		c.deadline = parent.deadline
		c.hasDeadline = true
	}

	if len(parent.flags) > 0 {
		flags := make([]*Flag, 0, len(parent.flags)+len(c.flags))
		flags = append(flags, parent.flags...)
		flags = append(flags, c.flags...)
		c.flags = flags
	}

	if c.clock == nil {
		c.clock = parent.clock
	}

	if c.hasDeadline && c.clock == nil {
		c.clock = clock.New()
	}

	return c
}

// IsDone reports whether the work observing this Cancellation should stop. It
// returns true when a deadline is set and the current instant is at or past
// it, or when any of the flags has been set.
//
// IsDone is a non-blocking poll: it never waits, never allocates, and takes
// no locks; it performs at most one clock read and one atomic load per flag.
// The clock and the flags are re-read on every call, so successive calls may
// disagree once a deadline passes or a flag flips. Safe to call concurrently
// from any number of goroutines, on this value or any copy of it.
func (c Cancellation) IsDone() bool {
	if c.hasDeadline && !c.clock.Now().Before(c.deadline) {
		return true
	}

	for _, f := range c.flags {
		if f.IsSet() {
			return true
		}
	}

	return false
}

// Deadline returns the deadline, if one is set.
func (c Cancellation) Deadline() (deadline time.Time, ok bool) {
	return c.deadline, c.hasDeadline
}
