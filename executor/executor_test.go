package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cschleiden/go-cancel/cancellation"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRun_ExecutesStepsInOrder(t *testing.T) {
	e := New()

	var executed []string

	step := func(name string) Step {
		return Step{
			Name: name,
			Run: func(ctx context.Context) error {
				executed = append(executed, name)
				return nil
			},
		}
	}

	result, err := e.Run(context.Background(), cancellation.Background(), []Step{
		step("one"), step("two"), step("three"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, executed)
	require.Equal(t, 3, result.Executed)
	require.NotEmpty(t, result.RunID)
}

func TestRun_EmptySteps(t *testing.T) {
	e := New()

	result, err := e.Run(context.Background(), cancellation.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.Executed)
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	e := New()

	flag := cancellation.NewFlag()
	flag.Set()

	executed := false

	result, err := e.Run(context.Background(), cancellation.New(cancellation.WithFlags(flag)), []Step{
		{
			Name: "never",
			Run: func(ctx context.Context) error {
				executed = true
				return nil
			},
		},
	})
	require.ErrorIs(t, err, ErrCanceled)
	require.ErrorContains(t, err, "never")
	require.False(t, executed)
	require.Equal(t, 0, result.Executed)
}

func TestRun_FlagSetDuringRunStopsBetweenSteps(t *testing.T) {
	e := New()

	flag := cancellation.NewFlag()
	c := cancellation.New(cancellation.WithFlags(flag))

	var executed []string

	result, err := e.Run(context.Background(), c, []Step{
		{
			Name: "first",
			Run: func(ctx context.Context) error {
				executed = append(executed, "first")

				// External cancellation request while the run is in flight
				flag.Set()

				return nil
			},
		},
		{
			Name: "second",
			Run: func(ctx context.Context) error {
				executed = append(executed, "second")
				return nil
			},
		},
	})
	require.ErrorIs(t, err, ErrCanceled)
	require.Equal(t, []string{"first"}, executed)
	require.Equal(t, 1, result.Executed)
}

func TestRun_DeadlineExpiresBetweenSteps(t *testing.T) {
	mc := clock.NewMock()

	e := New(WithClock(mc))

	c := cancellation.New(
		cancellation.WithDeadline(mc.Now().Add(time.Minute)),
		cancellation.WithClock(mc),
	)

	var executed []string

	result, err := e.Run(context.Background(), c, []Step{
		{
			Name: "slow",
			Run: func(ctx context.Context) error {
				executed = append(executed, "slow")
				mc.Add(2 * time.Minute)
				return nil
			},
		},
		{
			Name: "skipped",
			Run: func(ctx context.Context) error {
				executed = append(executed, "skipped")
				return nil
			},
		},
	})
	require.ErrorIs(t, err, ErrCanceled)
	require.ErrorContains(t, err, "before step skipped")
	require.Equal(t, []string{"slow"}, executed)
	require.Equal(t, 1, result.Executed)
	require.Equal(t, 2*time.Minute, result.Duration)
}

func TestRun_StepErrorStopsRun(t *testing.T) {
	e := New()

	stepErr := errors.New("boom")
	executed := false

	result, err := e.Run(context.Background(), cancellation.Background(), []Step{
		{
			Name: "failing",
			Run: func(ctx context.Context) error {
				return stepErr
			},
		},
		{
			Name: "skipped",
			Run: func(ctx context.Context) error {
				executed = true
				return nil
			},
		},
	})
	require.ErrorIs(t, err, stepErr)
	require.ErrorContains(t, err, "executing step failing")
	require.False(t, executed)
	require.Equal(t, 0, result.Executed)
}

func TestRun_StepPanicIsRecovered(t *testing.T) {
	e := New()

	_, err := e.Run(context.Background(), cancellation.Background(), []Step{
		{
			Name: "panicking",
			Run: func(ctx context.Context) error {
				panic("boom")
			},
		},
	})
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "boom", pe.Value)
	require.NotEmpty(t, pe.Stacktrace)
}

func stepWithoutName(ctx context.Context) error {
	return errors.New("boom")
}

func TestRun_StepNamedAfterFunction(t *testing.T) {
	e := New()

	_, err := e.Run(context.Background(), cancellation.Background(), []Step{
		NewStep(stepWithoutName),
	})
	require.ErrorContains(t, err, "executing step stepWithoutName")
}

func TestRun_Tracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)

	e := New(WithTracerProvider(provider))

	_, err := e.Run(context.Background(), cancellation.Background(), []Step{
		{
			Name: "traced",
			Run: func(ctx context.Context) error {
				return nil
			},
		},
	})
	require.NoError(t, err)

	spans := exporter.GetSpans().Snapshots()
	require.Len(t, spans, 2)

	var runSpan, stepSpan sdktrace.ReadOnlySpan
	for _, span := range spans {
		switch {
		case span.Name() == "Run":
			runSpan = span
		case strings.Contains(span.Name(), "traced"):
			stepSpan = span
		}
	}

	require.NotNil(t, runSpan)
	require.NotNil(t, stepSpan)
	require.Equal(t,
		runSpan.SpanContext().SpanID().String(),
		stepSpan.Parent().SpanID().String(),
	)
}
