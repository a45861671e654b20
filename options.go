package shard

import (
	"fmt"

	"go.uber.org/zap"
)

// Option is a functional option for configuring Build and Render.
type Option func(*buildConfig) error

type buildConfig struct {
	logger *zap.Logger
}

func newBuildConfig(opts []Option) (*buildConfig, error) {
	cfg := &buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger used for build and measure diagnostics.
// Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *buildConfig) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}
