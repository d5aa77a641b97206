package client

import (
	"errors"

	clienterrors "github.com/error404/rfid-client/client/internal/errors"
)

// TransportError is the failure returned for a network error (StatusCode 0)
// or a non-2xx response (StatusCode, Header and Body set).
type TransportError = clienterrors.ClassifiedError

// ErrorCategory says whether repeating a failed call could help.
type ErrorCategory = clienterrors.ErrorCategory

const (
	Recoverable   = clienterrors.Recoverable
	Irrecoverable = clienterrors.Irrecoverable
)

// ErrClosed is returned by async calls made after Close, or cut short by it.
var ErrClosed = errors.New("rfid client closed")

// IsIrrecoverable reports whether err is a rejection that will not change
// on repeat, such as 400 or 404.
func IsIrrecoverable(err error) bool { return clienterrors.IsIrrecoverable(err) }

// StatusCode returns the HTTP status of a non-2xx failure.
func StatusCode(err error) (int, bool) { return clienterrors.StatusCode(err) }
