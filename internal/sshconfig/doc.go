// Package sshconfig extracts host color annotations from an SSH client
// config file.
//
// Color annotations are structured comments placed immediately before a
// Host block:
//
//	# iterm-color: #1a1a2e
//	# vscode-color: #1a1a2e
//	Host dev-server
//	    HostName dev.example.com
//	    User emma
//
// Optional extension directives enrich the terminal profile for the host:
//
//	# iterm-badge: production db     (session label, defaults to the alias)
//	# iterm-switch: false            (disable automatic profile switching)
//
// Each directive applies only to the single Host line that follows it. A
// second directive of the same kind replaces a pending one, and directives
// with no following Host line are dropped. Wildcard patterns (aliases
// containing '*' or '?') never produce records; they have no single color.
//
// The parser is deliberately permissive: anything it does not recognize,
// including malformed hex tokens, is ignored rather than rejected, since an
// SSH config is full of directives this tool does not understand.
package sshconfig
