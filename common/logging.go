// Package common holds process-level helpers shared by the commands:
// logger setup and version information.
package common

import (
	"log/slog"
	"os"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// LoggingOpts controls how SetupLogger configures the process logger.
type LoggingOpts struct {
	// Debug enables debug-level logging
	Debug bool

	// JSON selects JSON output instead of text
	JSON bool

	// Service is attached to every record as the "service" field
	Service string

	// Version is attached to every record as the "version" field
	Version string
}

// SetupLogger creates a slog logger writing to stderr per the given options.
func SetupLogger(opts *LoggingOpts) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Debug {
		logLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	logger := slog.New(handler)
	if opts.Service != "" {
		logger = logger.With("service", opts.Service)
	}
	if opts.Version != "" {
		logger = logger.With("version", opts.Version)
	}
	return logger
}
