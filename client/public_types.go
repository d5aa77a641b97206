package client

import (
	"github.com/error404/rfid-client/client/internal/keyqueue"
	"github.com/error404/rfid-client/client/internal/types"
)

// Response is a completed exchange: status, headers and the raw body.
type Response = types.Response

// ExecutorConfig tunes the executor behind the async calls; see WithExecutorConfig.
type ExecutorConfig = keyqueue.Config
