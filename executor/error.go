package executor

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// PanicError is returned for a step that panicked. It carries the recovered
// value and the stack at the point of the panic.
type PanicError struct {
	Value any

	Stacktrace string
}

func newPanicError(v any) *PanicError {
	return &PanicError{
		Value:      v,
		Stacktrace: string(goerrors.New(v).Stack()),
	}
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("step panicked: %v", pe.Value)
}
