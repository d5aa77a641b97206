package keyqueue

import "context"

// Job is a unit of work executed by an Executor.
type Job interface {
	Run(ctx context.Context) error
}

// Skipper is implemented by jobs that must learn when the executor drops
// them without calling Run (cancelled context, shutdown mid-backoff).
type Skipper interface {
	Skip(err error)
}

// JobFunc adapts a plain function to a Job.
type JobFunc func(ctx context.Context) error

// Run implements Job for JobFunc.
func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }
