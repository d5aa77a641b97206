// Package client talks to the RFID status API: it fetches the data set and
// toggles a device by rfid. Results are handed back as the transport
// delivered them; interpreting them is the caller's job.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/error404/rfid-client/client/internal/api"
	"github.com/error404/rfid-client/client/internal/job"
	"github.com/error404/rfid-client/client/internal/keyqueue"
)

// DefaultBaseURL is the reference deployment of the RFID API.
const DefaultBaseURL = "http://localhost/rfid_api"

// Operation names used in errors, logs and metric labels.
const (
	opFetchData  = "fetch_data"
	opToggleRFID = "toggle_rfid"
)

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	debug   bool

	exec    executor
	execCfg keyqueue.Config

	// closing is canceled by Close and aborts async calls still in flight.
	closing context.Context
	cancel  context.CancelFunc

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL, e.g. DefaultBaseURL. A trailing slash
// is dropped so endpoint paths can be appended directly. Options may be
// given in any order.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		execCfg: defaultExecutorConfig(),
	}
	c.closing, c.cancel = context.WithCancel(context.Background())

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.debug {
		if _, wrapped := c.http.Transport.(*debugTransport); !wrapped {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		if c.execCfg.Logger == nil {
			l := log.Logger
			c.execCfg.Logger = &l
		}
	}
	if c.exec == nil {
		c.exec = keyqueue.New(c.execCfg)
	}
	return c
}

// BaseURL returns the endpoint root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Close aborts async calls still in flight, which then resolve with an error
// matching ErrClosed, and waits for them to settle. Safe to call multiple
// times. Synchronous calls keep working afterwards.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.cancel()
	c.exec.Stop()
	return nil
}

// FetchData issues GET {base}/get_data.php and returns the response as
// received. Non-2xx statuses and network failures come back as a
// *TransportError.
func (c *Client) FetchData(ctx context.Context) (*Response, error) {
	return observe(opFetchData, func() (*Response, error) {
		return api.FetchData(ctx, c.http, c.baseURL)
	})
}

// ToggleRFID issues POST {base}/update_status.php with the form body
// rfid=<rfid>. The value is not checked; the server decides what it means.
func (c *Client) ToggleRFID(ctx context.Context, rfid string) (*Response, error) {
	return observe(opToggleRFID, func() (*Response, error) {
		return api.ToggleRFID(ctx, c.http, c.baseURL, rfid)
	})
}

// FetchDataAsync starts FetchData in the background and returns at once.
// Every failure, including a closed client, is delivered through the
// returned Pending.
func (c *Client) FetchDataAsync(ctx context.Context) *Pending {
	p, _ := c.submit(ctx, c.FetchData)
	return p
}

// ToggleRFIDAsync starts ToggleRFID in the background and returns at once.
// Concurrent toggles, even for the same rfid, are not ordered.
func (c *Client) ToggleRFIDAsync(ctx context.Context, rfid string) *Pending {
	p, accepted := c.submit(ctx, func(callCtx context.Context) (*Response, error) {
		return c.ToggleRFID(callCtx, rfid)
	})
	if accepted {
		togglesEnqueuedTotal.WithLabelValues(job.BucketLabel(rfid)).Inc()
	}
	return p
}

// submit runs call under its own key, so no async call ever waits behind
// another. It reports whether the executor took the job; when it did not,
// the Pending is already resolved with the reason.
func (c *Client) submit(ctx context.Context, call func(context.Context) (*Response, error)) (*Pending, bool) {
	p := newPending()
	j := job.WithSkip(func(jobCtx context.Context) error {
		resp, err := c.callUntilClosed(jobCtx, call)
		p.resolve(resp, err)
		return err
	}, func(err error) {
		p.resolve(nil, err)
	})

	if err := c.exec.Submit(ctx, p.ID(), j); err != nil {
		p.resolve(nil, submitError(err))
		return p, false
	}
	return p, true
}

// callUntilClosed runs call with ctx, canceling it early if the client is
// closed meanwhile.
func (c *Client) callUntilClosed(ctx context.Context, call func(context.Context) (*Response, error)) (*Response, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.closing, cancel)
	defer stop()

	resp, err := call(ctx)
	if err != nil && ctx.Err() != nil && c.closing.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return resp, err
}

func submitError(err error) error {
	if errors.Is(err, keyqueue.ErrExecutorClosed) {
		return ErrClosed
	}
	return err
}

func observe(operation string, call func() (*Response, error)) (*Response, error) {
	requestsTotal.WithLabelValues(operation).Inc()
	resp, err := call()
	if err != nil {
		requestFailuresTotal.WithLabelValues(operation).Inc()
	}
	return resp, err
}

// defaultExecutorConfig never retries: each RFID call hits the wire once.
func defaultExecutorConfig() keyqueue.Config {
	return keyqueue.Config{QueueSize: 1, MaxAttempts: 1}
}
