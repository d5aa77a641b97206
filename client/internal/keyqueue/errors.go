package keyqueue

import (
	"errors"
	"fmt"
)

// ErrQueueFull reports that a key already has QueueSize jobs waiting.
var ErrQueueFull = errors.New("key queue full")

// ErrExecutorClosed reports that Stop has been called; no further work is
// accepted.
var ErrExecutorClosed = errors.New("key executor closed")

// QueueFullError carries diagnostics while satisfying errors.Is(_, ErrQueueFull).
type QueueFullError struct {
	Key      string
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("queue for key %q full (len=%d cap=%d)", e.Key, e.Length, e.Capacity)
}

func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
