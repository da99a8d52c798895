// Package logger constructs the zerolog loggers used by the CLI.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable console output to stderr,
// keeping stdout free for the command's own output. verbose lowers the
// level from Info to Debug.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return NewWithOutput(os.Stderr, level)
}

// NewWithOutput returns a console logger writing to out at the given level.
func NewWithOutput(out io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards all output. Intended for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
