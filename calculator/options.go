// SPDX-License-Identifier: MIT

// Package calculator: functional configuration for Calculator.
// Option setters are idempotent; the last one applied wins.

package calculator

import (
	"io"
	"log/slog"
)

const panicNilLogger = "calculator: WithLogger: logger must be non-nil"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger *slog.Logger // Debug-level dispatch trace; discard by default
}

// WithLogger routes the Calculator's Debug-level dispatch trace to logger.
// Panics on a nil logger (programmer error).
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// defaultOptions returns the zero-configuration Options: a logger that
// discards everything.
func defaultOptions() Options {
	return Options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// gatherOptions applies user options on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
