// Package sink writes computed color payloads to the external presentation
// targets.
//
// Two sinks exist: TerminalProfileSink replaces the generated iTerm2
// dynamic profiles file, and EditorSink generates per-host VS Code
// workspace files plus a SettingsPatcher that applies or clears the color
// customization in a live workspace settings file.
//
// Sink writes are the only operations that may fail for I/O reasons. They
// carry no retry; the caller reports the failure and the next pipeline run
// attempts again from scratch.
package sink
