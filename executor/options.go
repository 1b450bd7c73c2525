package executor

import (
	"log/slog"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	Logger *slog.Logger

	TracerProvider trace.TracerProvider

	// Clock is the time source used for measuring step durations. Defaults to
	// the system clock.
	Clock clock.Clock
}

var DefaultOptions Options = Options{
	Logger:         slog.Default(),
	TracerProvider: trace.NewNoopTracerProvider(),
	Clock:          clock.New(),
}

type Option func(*Options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

func WithClock(clock clock.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}
