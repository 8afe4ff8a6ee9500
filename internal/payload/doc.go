// Package payload computes the presentation payloads derived from a host's
// base color.
//
// For the editor target it derives the full workbench color-customization
// set (title bar, activity bar, status bar, fixed white foregrounds, and an
// inactive title bar with a fixed transparency suffix). The set is a pure
// function of the base color.
//
// For the terminal target it builds iTerm2 dynamic profile records,
// including the optional session label and automatic-profile-switching
// extension fields.
package payload
