package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing result lines for the CLI commands. Unlike the diagnostic
// channel these are the command output proper: info and success go to
// stdout, warnings and errors to stderr, each line prefixed with a status
// mark.

func userLine(w io.Writer, mark, format string, args ...any) {
	fmt.Fprintf(w, mark+" "+format+"\n", args...)
}

// UserInfo reports a neutral outcome, such as an empty host map or an
// absent remote session.
func UserInfo(format string, args ...any) {
	userLine(os.Stdout, "ℹ", format, args...)
}

// UserSuccess reports a completed sink write or applied payload.
func UserSuccess(format string, args ...any) {
	userLine(os.Stdout, "✓", format, args...)
}

// UserWarning reports a recoverable problem the run continued past.
func UserWarning(format string, args ...any) {
	userLine(os.Stderr, "⚠", format, args...)
}

// UserError reports a failed operation before the command exits non-zero.
func UserError(format string, args ...any) {
	userLine(os.Stderr, "✗", format, args...)
}
