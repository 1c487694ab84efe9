package index

import (
	"github.com/go-arrower/entities/alog"
)

// Option configures an index at construction time.
type Option func(config *indexConfig)

// WithLogger sets the logger an index reports overwritten keys and dropped IDs to.
// The indexes log on alog.LevelDebug only. Default is alog.NewNoop.
func WithLogger(logger alog.Logger) Option {
	return func(config *indexConfig) {
		config.logger = logger
	}
}

type indexConfig struct {
	logger alog.Logger
}

func newConfig(opts ...Option) indexConfig {
	config := indexConfig{
		logger: alog.NewNoop(),
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
