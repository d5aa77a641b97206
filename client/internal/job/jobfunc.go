// Package job adapts closures to the key executor's Job interface.
package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a Func is nil.
var ErrNilJobFunc = errors.New("nil job func")

// Func lets plain closures run on the key executor.
type Func func(context.Context) error

// Run implements keyqueue.Job.
func (f Func) Run(ctx context.Context) error {
	if f == nil {
		return fmt.Errorf("job: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// New wraps fn as a Func.
func New(fn func(context.Context) error) Func {
	return Func(fn)
}

// Skippable is a Func that also hears about being dropped unrun.
type Skippable struct {
	Func
	OnSkip func(error)
}

// Skip implements keyqueue.Skipper.
func (s Skippable) Skip(err error) {
	if s.OnSkip != nil {
		s.OnSkip(err)
	}
}

// WithSkip pairs run with the hook the executor calls when it drops the job.
func WithSkip(run func(context.Context) error, onSkip func(error)) Skippable {
	return Skippable{Func: New(run), OnSkip: onSkip}
}
