// Package errors classifies failures reported by the RFID status API
// transport so callers can tell a dead network from a rejected request.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCategory tells callers whether repeating the same request could help.
type ErrorCategory int

const (
	// Recoverable failures may succeed on a later attempt.
	// Examples: 503 Service Unavailable, connection refused, timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail the same way again.
	// Examples: 400 Bad Request, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError is the single failure shape produced by the RFID client.
// StatusCode is 0 when no HTTP response was received.
type ClassifiedError struct {
	Category   ErrorCategory
	Operation  string      // e.g. "fetch data", "toggle rfid"
	StatusCode int         // HTTP status code (0 for network errors)
	Header     http.Header // response headers, nil for network errors
	Body       []byte      // raw response body, nil for network errors
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap exposes the transport error so errors.Is(err, context.Canceled)
// and friends keep working.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err carries an Irrecoverable classification
// anywhere in its chain.
func IsIrrecoverable(err error) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category == Irrecoverable
	}
	return false
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var classified *ClassifiedError
	if errors.As(err, &classified) && classified.StatusCode > 0 {
		return classified.StatusCode, true
	}
	return 0, false
}
