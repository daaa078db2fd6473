package gocube

import "github.com/rs/zerolog"

// Option configures Cube and Tracker behavior.
type Option func(*config)

type config struct {
	invariantChecks bool
	moveHistory     bool
	logger          zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		invariantChecks: false,
		moveHistory:     true,
		logger:          zerolog.Nop(),
	}
}

func buildConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithInvariantChecks verifies after every quarter turn that the 26
// cubies still occupy 26 distinct lattice points. A violation is a bug
// in the rotation engine and panics.
func WithInvariantChecks(enabled bool) Option {
	return func(c *config) {
		c.invariantChecks = enabled
	}
}

// WithMoveHistory enables or disables move history tracking in a Tracker.
// When enabled (default), applied moves are stored and can be undone.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithLogger sets the logger used to trace applied turns.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
