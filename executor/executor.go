package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cschleiden/go-cancel/cancellation"
	"github.com/cschleiden/go-cancel/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the name of the tracer used for executor spans.
const TracerName = "go-cancel"

// ErrCanceled is returned by Run when the given Cancellation reports done
// before all steps have executed. Runs are only ever stopped between steps,
// never in the middle of one.
var ErrCanceled = errors.New("run canceled")

// Result describes a finished or aborted run.
type Result struct {
	// RunID is the unique id assigned to this run.
	RunID string

	// Executed is the number of steps that were executed.
	Executed int

	// Duration is the total wall time of the run.
	Duration time.Duration
}

// Executor runs a sequence of steps while cooperatively polling a
// Cancellation between steps.
type Executor struct {
	options *Options

	tracer trace.Tracer
}

// New creates an executor with the given options.
func New(opts ...Option) *Executor {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	return &Executor{
		options: &options,
		tracer:  options.TracerProvider.Tracer(TracerName),
	}
}

// Run executes the given steps in order. Before every step is started, c is
// polled; if it reports done, the remaining steps are skipped and Run returns
// ErrCanceled wrapped with the name of the first step that was not executed.
// A step returning an error also ends the run; subsequent steps are skipped.
//
// The returned Result is valid in all cases and describes how far the run got.
func (e *Executor) Run(ctx context.Context, c cancellation.Cancellation, steps []Step) (*Result, error) {
	runID := uuid.NewString()

	logger := e.options.Logger.With(log.RunIDKey, runID)

	attributes := []attribute.KeyValue{
		attribute.String(log.RunIDKey, runID),
		attribute.Int(log.StepsKey, len(steps)),
	}
	if deadline, ok := c.Deadline(); ok {
		attributes = append(attributes, attribute.String(log.DeadlineKey, deadline.Format(time.RFC3339Nano)))
	}

	ctx, span := e.tracer.Start(ctx, "Run", trace.WithAttributes(attributes...))
	defer span.End()

	start := e.options.Clock.Now()

	result := func(executed int) *Result {
		return &Result{
			RunID:    runID,
			Executed: executed,
			Duration: e.options.Clock.Since(start),
		}
	}

	for i, step := range steps {
		if c.IsDone() {
			logger.Debug("Canceling run", log.StepNameKey, step.name())

			err := fmt.Errorf("before step %s: %w", step.name(), ErrCanceled)
			span.RecordError(err)

			return result(i), err
		}

		if err := e.executeStep(ctx, logger, step); err != nil {
			span.RecordError(err)

			return result(i), fmt.Errorf("executing step %s: %w", step.name(), err)
		}
	}

	logger.Debug("Run finished", log.StepsKey, len(steps))

	return result(len(steps)), nil
}

func (e *Executor) executeStep(ctx context.Context, logger *slog.Logger, step Step) (err error) {
	name := step.name()

	ctx, span := e.tracer.Start(ctx, fmt.Sprintf("Step: %s", name), trace.WithAttributes(
		attribute.String(log.StepNameKey, name),
	))
	defer span.End()

	start := e.options.Clock.Now()

	// Recover from a panicking step so one bad step cannot take down the
	// whole process.
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)

			logger.Error("Step panicked",
				log.StepNameKey, name,
				log.DurationKey, e.options.Clock.Since(start).Milliseconds(),
				"error", err,
			)
		}
	}()

	if err := step.Run(ctx); err != nil {
		logger.Error("Step failed",
			log.StepNameKey, name,
			log.DurationKey, e.options.Clock.Since(start).Milliseconds(),
			"error", err,
		)

		return err
	}

	logger.Debug("Executed step",
		log.StepNameKey, name,
		log.DurationKey, e.options.Clock.Since(start).Milliseconds(),
	)

	return nil
}
