package executor

import (
	"context"

	"github.com/cschleiden/go-cancel/internal/fn"
)

// Step is a single unit of work in a run. Cancellation is only checked
// between steps, so steps should be sized such that skipping the remaining
// ones is a useful reaction to cancellation.
type Step struct {
	// Name identifies the step in logs and traces. If empty, the name of the
	// Run function is used.
	Name string

	// Run executes the step. The context carries the run's trace span.
	Run func(ctx context.Context) error
}

// NewStep returns a Step named after the given function.
func NewStep(run func(ctx context.Context) error) Step {
	return Step{
		Run: run,
	}
}

func (s Step) name() string {
	if s.Name != "" {
		return s.Name
	}

	return fn.Name(s.Run)
}
