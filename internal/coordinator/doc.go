// Package coordinator drives the full color pipeline in response to
// triggers: process startup, SSH config file changes, and explicit user
// refreshes.
//
// Runs are strictly serialized. Triggers enqueue onto one channel and the
// run loop processes them in arrival order; a trigger arriving mid-run
// waits, and the next run reads the latest file content when it starts.
// The current host map and the last-applied color are owned exclusively by
// the loop, so no locking is needed.
//
// A run that resolves to "no active host" or "no color for this host" is a
// silent no-op apart from diagnostics. I/O failures abort the run without
// touching previously applied state; the next trigger retries from scratch.
package coordinator
