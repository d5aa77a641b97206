package errors

import (
	"fmt"
	"net/http"
)

// categoryFor maps an HTTP status code onto a category.
// 408 and 429 are the only 4xx statuses worth repeating.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

// NewHTTPError builds the error for a response outside the 2xx range.
// The response header and body are kept verbatim for the caller.
func NewHTTPError(operation string, statusCode int, header http.Header, body []byte) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		Operation:  operation,
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError builds the error for a request that produced no response.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Operation:  operation,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
