package client

import (
	"context"

	"github.com/error404/rfid-client/client/internal/keyqueue"
)

// executor abstracts the job runner behind the async calls.
type executor interface {
	Submit(context.Context, string, keyqueue.Job) error
	Stop()
}
