package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Pending is the eventual outcome of an async call. It resolves exactly once,
// with either a response or an error.
type Pending struct {
	id   string
	done chan struct{}
	once sync.Once

	resp *Response
	err  error
}

func newPending() *Pending {
	return &Pending{id: uuid.NewString(), done: make(chan struct{})}
}

// ID identifies the call in logs.
func (p *Pending) ID() string { return p.id }

// Done is closed once the outcome is known.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the outcome is known or ctx ends. Giving up on Wait does
// not cancel the request; cancel the context passed to the async call for that.
func (p *Pending) Wait(ctx context.Context) (*Response, error) {
	select {
	case <-p.done:
		return p.resp, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pending) resolve(resp *Response, err error) {
	p.once.Do(func() {
		p.resp, p.err = resp, err
		close(p.done)
	})
}
