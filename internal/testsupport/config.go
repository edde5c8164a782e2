// Package testsupport provides helpers shared by package tests: canned
// configurations and cue sheet fixtures written to per-test temp
// directories.
package testsupport

import (
	"testing"

	"cuekit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config suitable for tests and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithLogFormat sets the log output format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Format = format
	}
}
