package client

// Functional options applied by New, in order.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the transport client. The client is copied, so
// the timeout and debug options do not mutate the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout bounds every request at the transport level. There is no
// timeout by default; prefer per-call context deadlines. It applies to the
// final client whether it comes before or after WithHTTPClient.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging wraps the transport so each request and response is
// dumped at debug level, and lets the async executor log through the global
// zerolog logger. Dumps include bodies; keep it out of production. Without
// it the client writes no logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithExecutorConfig tunes the executor behind the async calls, e.g. to set
// an ErrorHandler or Logger. MaxAttempts is pinned to 1: RFID calls are never
// repeated.
func WithExecutorConfig(cfg ExecutorConfig) Option {
	return func(c *Client) error {
		cfg.MaxAttempts = 1
		c.execCfg = cfg
		return nil
	}
}
