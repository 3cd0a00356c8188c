// SPDX-License-Identifier: MIT
//
// options.go — functional options resolved into an explicit Config.
//
// Contract:
//   - Options are functional (type Option func(*Config)); no globals.
//   - Option constructors validate and panic on meaningless input;
//     construction paths themselves never panic at runtime.
//   - Every factory entry point resolves one Config and threads it through
//     the builder; a graph reports its resolved Config via Config().

package core

// Config is the single configuration value threaded through every factory
// call. Hints are pure pre-allocation advice and never affect correctness.
type Config struct {
	// OrderHint is the expected node count (0 = unknown).
	OrderHint int
	// SizeHint is the expected edge count (0 = unknown).
	SizeHint int
}

// DefaultConfig returns the documented default configuration: no capacity
// hints. It is used whenever a factory is called without options.
func DefaultConfig() Config {
	return Config{}
}

// Option customizes construction behavior by mutating a Config before any
// set is allocated. Applying k options costs O(k).
type Option func(*Config)

// newConfig resolves options in order (later overrides earlier) on top of
// DefaultConfig. Complexity: O(len(opts)).
func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrderHint pre-sizes node storage for n nodes. Panics if n < 0.
func WithOrderHint(n int) Option {
	if n < 0 {
		panic("core: WithOrderHint(n<0)")
	}
	return func(c *Config) { c.OrderHint = n }
}

// WithSizeHint pre-sizes edge storage for n edges. Panics if n < 0.
func WithSizeHint(n int) Option {
	if n < 0 {
		panic("core: WithSizeHint(n<0)")
	}
	return func(c *Config) { c.SizeHint = n }
}
