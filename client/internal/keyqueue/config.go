package keyqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config groups all tunables. Values are taken from environment variables with
// the prefix "KQ_". Example: KQ_QUEUE_SIZE=256 KQ_MAX_ATTEMPTS=1 .
type Config struct {
	// QueueSize caps how many jobs may wait behind the running one on a
	// single key.
	QueueSize int `envconfig:"QUEUE_SIZE" default:"128"`

	// ErrorHandler is called synchronously after a Job fails for good or is
	// skipped. Leave nil if you do not care.
	ErrorHandler func(error) `envconfig:"-"`

	// Logger receives lifecycle and panic events. Nil means silent.
	Logger *zerolog.Logger `envconfig:"-"`

	// MaxAttempts of 1 disables retries.
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"8"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`
}

// LoadConfig populates Config from environment variables (prefix KQ_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("KQ", &c)
}

func (c Config) withDefaults() Config {
	if c.QueueSize <= 0 {
		c.QueueSize = 128
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 20 * time.Second
	}
	return c
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
