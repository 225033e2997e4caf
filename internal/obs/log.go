// Package obs carries the engine's structured-logging conventions:
// a component that logs gets its zerolog.Logger from the caller (a
// constructor argument, a functional option or an options field) or
// falls back to Default(), never a package-level global. Component
// tags a logger's lines with a "component" field; algo.WithLogger and
// gpux.NewSoftwareDevice apply it.
package obs

import "github.com/rs/zerolog"

// Component returns logger tagged with a "component" field.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// Default returns the no-op logger, used when a caller does not wire
// one in explicitly.
func Default() zerolog.Logger {
	return zerolog.Nop()
}
