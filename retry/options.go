package retry

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

type Options struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64

	// MaxElapsedTime bounds the total retry time. Zero means retry until the
	// context or the Cancellation ends the loop.
	MaxElapsedTime time.Duration

	Logger *slog.Logger

	Clock clock.Clock
}

var DefaultOptions Options = Options{
	InitialInterval:     100 * time.Millisecond,
	MaxInterval:         5 * time.Second,
	Multiplier:          1.5,
	RandomizationFactor: 0.5,

	Logger: slog.Default(),
	Clock:  clock.New(),
}

type Option func(*Options)

func WithInitialInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.InitialInterval = interval
	}
}

func WithMaxInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.MaxInterval = interval
	}
}

func WithMaxElapsedTime(d time.Duration) Option {
	return func(o *Options) {
		o.MaxElapsedTime = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithClock(clock clock.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}
