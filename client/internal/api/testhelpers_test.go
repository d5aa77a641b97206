package api

import (
	"fmt"
	"io"
	"net/http"
)

// errRT is an http.RoundTripper that always fails (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// brokenBodyRT answers 200 with a body that fails mid-read.
type brokenBodyRT struct{}

func (b *brokenBodyRT) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     make(http.Header),
		Body:       io.NopCloser(&failingReader{}),
	}, nil
}

type failingReader struct{}

func (f *failingReader) Read([]byte) (int, error) { return 0, fmt.Errorf("connection reset") }
