// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// EnforceCapacity makes signup reject full rosters. Off by default;
	// max_participants is advisory in the reference behavior.
	EnforceCapacity bool `koanf:"enforce_capacity"`

	// SeedFile optionally points at an activity catalogue JSON file.
	// Empty means the embedded catalogue.
	SeedFile string `koanf:"seed_file"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:        "info",
		Addr:            ":8000",
		EnforceCapacity: false,
		SeedFile:        "",
	}
	return c
}
