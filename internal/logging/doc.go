// Package logging provides logging utilities for sshtint.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for diagnostics (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("parsed ssh config", "hosts", len(hosts), "path", path)
//	logging.Warn("profile write failed", "path", path, "error", err)
//
// Resolution outcomes ("no active host", "no color for host") are normal
// results, not failures; they are logged at debug/info level only.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No hosts with color annotations found")
//	logging.UserSuccess("Generated iTerm2 profiles: %s", path)
//	logging.UserWarning("Skipping wildcard host pattern %q", alias)
//	logging.UserError("Failed to write profiles: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
