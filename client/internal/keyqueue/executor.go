// Package keyqueue runs jobs on one worker goroutine per key. Jobs submitted
// under the same key run one at a time in submission order; jobs with
// different keys never wait on each other. A key's worker exits once its
// queue is empty, so idle keys cost nothing.
package keyqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/error404/rfid-client/client/internal/errors"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

type lane struct {
	key   string
	queue []queuedJob
}

// Executor executes Jobs on per-key worker goroutines.
type Executor struct {
	cfg Config
	log zerolog.Logger

	mu     sync.Mutex // guards lanes and closed
	lanes  map[string]*lane
	closed bool

	done chan struct{} // closed in Stop()
	wg   sync.WaitGroup
}

// New constructs an idle executor. Zero fields in cfg take the LoadConfig
// defaults.
func New(cfg Config) *Executor {
	cfg = cfg.withDefaults()
	return &Executor{
		cfg:   cfg,
		log:   cfg.logger(),
		lanes: make(map[string]*lane),
		done:  make(chan struct{}),
	}
}

// Submit appends job to the queue for key, starting a worker for key if it
// has none.
//
//   - Returns nil on success.
//   - Returns ErrExecutorClosed if the executor is stopped.
//   - Returns a *QueueFullError if key already has QueueSize jobs waiting.
//   - Returns ctx.Err() if ctx has already ended.
func (p *Executor) Submit(ctx context.Context, key string, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrExecutorClosed
	}

	l, ok := p.lanes[key]
	if !ok {
		l = &lane{key: key}
		p.lanes[key] = l
		activeLanes.Inc()
		p.wg.Add(1)
		go p.runLane(l)
	} else if len(l.queue) >= p.cfg.QueueSize {
		queueFullTotal.Inc()
		return &QueueFullError{Key: key, Length: len(l.queue), Capacity: p.cfg.QueueSize}
	}
	l.queue = append(l.queue, queuedJob{ctx: ctx, job: job})
	submissionsTotal.Inc()
	return nil
}

// Barrier waits until every job submitted for key before the call has run.
func (p *Executor) Barrier(ctx context.Context, key string) error {
	reached := make(chan struct{})
	if err := p.Submit(ctx, key, JobFunc(func(context.Context) error {
		close(reached)
		return nil
	})); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-reached:
		return nil
	}
}

// Stop rejects new work, lets every worker finish its queue without
// retries, and waits for them to exit. Idempotent and safe for concurrent
// use.
func (p *Executor) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	n := len(p.lanes)
	p.mu.Unlock()

	p.log.Debug().Int("lanes", n).Msg("keyqueue: stopping executor")
	p.wg.Wait()
	p.log.Debug().Msg("keyqueue: executor stopped")
}

// Close lets Executor satisfy io.Closer.
func (p *Executor) Close() error {
	p.Stop()
	return nil
}

func (p *Executor) runLane(l *lane) {
	defer p.wg.Done()
	for {
		qj, ok := p.next(l)
		if !ok {
			return
		}
		if qj.job != nil {
			p.process(qj)
		}
	}
}

// next pops the head of l. When l is empty it retires the lane under the
// same lock Submit takes, so nothing can be appended to a lane that has no
// worker.
func (p *Executor) next(l *lane) (queuedJob, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(l.queue) == 0 {
		delete(p.lanes, l.key)
		activeLanes.Dec()
		return queuedJob{}, false
	}
	qj := l.queue[0]
	l.queue[0] = queuedJob{}
	l.queue = l.queue[1:]
	return qj, true
}

func (p *Executor) stopping() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// process runs one job with backoff retries until it succeeds, fails for
// good, or its context ends. After Stop a job gets a single attempt.
func (p *Executor) process(qj queuedJob) {
	if err := qj.ctx.Err(); err != nil {
		p.skip(qj.job, err)
		return
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = p.cfg.MaxInterval
	exp.Reset()

	for attempt := 1; ; attempt++ {
		err := p.runOnce(qj)
		if err == nil {
			return
		}
		if errors.IsIrrecoverable(err) || attempt >= p.cfg.MaxAttempts || p.stopping() {
			p.safeHandleError(err)
			return
		}

		wait := time.NewTimer(exp.NextBackOff())
		select {
		case <-wait.C:
		case <-p.done:
			wait.Stop()
			p.skip(qj.job, ErrExecutorClosed)
			return
		case <-qj.ctx.Done():
			wait.Stop()
			p.skip(qj.job, qj.ctx.Err())
			return
		}
	}
}

// runOnce calls Run and turns a panic into an error so the worker survives.
func (p *Executor) runOnce(qj queuedJob) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("keyqueue: job panic")
			err = fmt.Errorf("keyqueue: job panic: %v", r)
		}
		runDuration.Observe(time.Since(start).Seconds())
	}()
	return qj.job.Run(qj.ctx)
}

func (p *Executor) skip(job Job, err error) {
	skippedTotal.Inc()
	if s, ok := job.(Skipper); ok {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error().Interface("panic", r).Msg("keyqueue: skip hook panic")
				}
			}()
			s.Skip(err)
		}()
	}
	p.safeHandleError(err)
}

func (p *Executor) safeHandleError(err error) {
	if err == nil || p.cfg.ErrorHandler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("keyqueue: error handler panic")
		}
	}()
	p.cfg.ErrorHandler(err)
}
