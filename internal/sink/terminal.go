package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sshtint/internal/config"
	"sshtint/internal/logging"
	"sshtint/internal/payload"
	"sshtint/internal/sshconfig"
)

// profilesDocument is the top-level structure of the dynamic profiles file.
type profilesDocument struct {
	Profiles []*payload.Profile `json:"Profiles"`
}

// TerminalProfileSink writes iTerm2 dynamic profiles. It owns the generated
// file and wholesale-replaces it on every write; the file must not be
// hand-edited.
type TerminalProfileSink struct {
	Dir     string // DynamicProfiles directory
	HomeDir string // working directory baked into each profile
}

// NewTerminalProfileSink builds the sink for the configured profiles
// directory.
func NewTerminalProfileSink(paths *config.Paths) *TerminalProfileSink {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &TerminalProfileSink{Dir: paths.ProfilesDir, HomeDir: home}
}

// Write generates one profile per host with a terminal color and replaces
// the profiles file. It returns the number of profiles written.
func (s *TerminalProfileSink) Write(hosts sshconfig.HostColorMap) (int, error) {
	aliases := hosts.Aliases()
	sort.Strings(aliases)

	doc := profilesDocument{Profiles: []*payload.Profile{}}
	for _, alias := range aliases {
		p, err := payload.TerminalProfile(hosts[alias], s.HomeDir)
		if err != nil {
			// A color that passed the parser but fails conversion is a bug;
			// skip the host rather than fail the whole run.
			logging.Warn("skipping host with unconvertible color", "alias", alias, "error", err)
			continue
		}
		if p == nil {
			continue
		}
		doc.Profiles = append(doc.Profiles, p)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create profiles directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("cannot encode profiles: %w", err)
	}

	path := filepath.Join(s.Dir, config.ProfilesFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("cannot write profiles file: %w", err)
	}

	logging.Debug("wrote terminal profiles", "path", path, "count", len(doc.Profiles))
	return len(doc.Profiles), nil
}
