// Package errors provides the sshtint error type and exit codes.
//
// Only I/O boundary failures (reading the SSH config, writing a sink,
// establishing the file watch) become TintErrors. Parse-level problems such
// as malformed hex tokens or unrecognized lines are non-matches by design
// and never surface as errors; absence conditions (missing config file, no
// active remote session, host without a color) are normal outcomes.
//
// The exit code of a TintError propagates to the process exit status via
// GetExitCode in main.
package errors
