// Package resolver determines which configured host, if any, the current
// session is connected to.
//
// The ambient session identity is a single remote-authority string of the
// fixed shape "<marker>+<hostname>", e.g. "ssh-remote+dev-server". Any other
// shape means no active remote session of the recognized kind; there is no
// partial matching.
package resolver

import (
	"os"
	"strings"

	"sshtint/internal/logging"
	"sshtint/internal/sshconfig"
)

// Environment variables probed for the ambient remote authority, in order.
var authorityEnvVars = []string{
	"SSHTINT_REMOTE_AUTHORITY",
	"VSCODE_REMOTE_AUTHORITY",
}

// ActiveHostContext describes the current session's remote identity. It is
// recomputed on every resolution request and never cached.
type ActiveHostContext struct {
	Remote bool   // an active remote connection of the recognized kind
	Alias  string // the remote host token, set only when Remote is true
}

// ParseAuthority extracts the active host context from an authority string.
// The string must be exactly marker, '+', and a non-empty hostname; anything
// else yields "no active host".
func ParseAuthority(authority, marker string) ActiveHostContext {
	prefix, host, found := strings.Cut(authority, "+")
	if !found || prefix != marker || host == "" {
		return ActiveHostContext{}
	}
	return ActiveHostContext{Remote: true, Alias: host}
}

// FromEnv probes the environment for a remote authority and parses it.
func FromEnv(marker string) ActiveHostContext {
	for _, key := range authorityEnvVars {
		if authority := os.Getenv(key); authority != "" {
			return ParseAuthority(authority, marker)
		}
	}
	return ActiveHostContext{}
}

// Resolution is the outcome of resolving the active host against a map.
type Resolution struct {
	Context ActiveHostContext
	Record  *sshconfig.HostColorRecord // nil when no configured color applies
}

// Color returns the resolved editor color, or empty when none applies.
func (r Resolution) Color() string {
	if r.Record == nil {
		return ""
	}
	return r.Record.EditorColor
}

// Resolve looks the active host up in the map. Resolution short-circuits
// when no remote session is active; a map miss is the normal "host has no
// configured color" outcome rather than an error.
func Resolve(ctx ActiveHostContext, hosts sshconfig.HostColorMap) Resolution {
	if !ctx.Remote {
		logging.Debug("no active remote session")
		return Resolution{Context: ctx}
	}
	rec, ok := hosts[ctx.Alias]
	if !ok {
		logging.Debug("no color defined for host", "alias", ctx.Alias)
		return Resolution{Context: ctx}
	}
	return Resolution{Context: ctx, Record: rec}
}
