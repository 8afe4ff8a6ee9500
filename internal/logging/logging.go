package logging

import (
	"io"
	"log/slog"
	"os"
)

// Verbose reports whether debug diagnostics are enabled. Set by Setup from
// the --verbose flag.
var Verbose bool

// logger is the process-wide diagnostic logger. Diagnostics always go to
// stderr (or the writer handed to Setup) so stdout stays reserved for user
// output and printed payloads.
var logger = newLogger(false, false, os.Stderr)

func newLogger(verbose, jsonOutput bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup configures the diagnostic channel from the CLI flags. Verbose
// lowers the threshold to debug; jsonOutput switches to one JSON object per
// line for log collectors.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose
	if w == nil {
		w = os.Stderr
	}
	logger = newLogger(verbose, jsonOutput, w)
}

// Component returns a logger tagged with the pipeline component emitting
// the diagnostics, e.g. "watch".
func Component(name string) *slog.Logger {
	return logger.With("component", name)
}

// Debug logs a diagnostic shown only in verbose mode. Absence outcomes
// (missing config file, no active remote session) log here.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs a pipeline progress diagnostic.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a recoverable problem, such as a host skipped during a sink
// write.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs a failed pipeline run.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}
