package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAuthorityMarker is the remote-authority kind recognized by the
// resolver. Authorities look like "ssh-remote+dev-server".
const DefaultAuthorityMarker = "ssh-remote"

// ProfilesFileName is the generated iTerm2 dynamic profiles file. The file
// is owned by sshtint and wholesale replaced on every run.
const ProfilesFileName = "ssh-hosts.json"

// Paths holds the filesystem locations sshtint reads and writes.
type Paths struct {
	SSHConfig     string // SSH client config, the source of truth
	ProfilesDir   string // iTerm2 DynamicProfiles directory
	WorkspacesDir string // generated .code-workspace files
}

// DefaultPaths returns the per-user default locations.
func DefaultPaths() *Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the current directory; callers surface path errors
		// on first read/write.
		home = "."
	}
	return &Paths{
		SSHConfig:     filepath.Join(home, ".ssh", "config"),
		ProfilesDir:   filepath.Join(home, "Library", "Application Support", "iTerm2", "DynamicProfiles"),
		WorkspacesDir: filepath.Join(home, ".ssh", "workspaces"),
	}
}

// ProfilesFile returns the full path of the generated profiles file.
func (p *Paths) ProfilesFile() string {
	return filepath.Join(p.ProfilesDir, ProfilesFileName)
}

// Settings is the optional sshtint tool configuration, loaded from a TOML
// file. Every field has a default; an absent settings file is normal.
type Settings struct {
	SSHConfig       string `toml:"ssh_config"`
	ProfilesDir     string `toml:"profiles_dir"`
	WorkspacesDir   string `toml:"workspaces_dir"`
	AuthorityMarker string `toml:"authority_marker"`
}

// DefaultSettingsPath returns the default settings file location.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "sshtint", "config.toml")
}

// LoadSettings reads settings from path, filling defaults for absent fields.
// A missing file yields pure defaults without error.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{
		AuthorityMarker: DefaultAuthorityMarker,
	}
	defaults := DefaultPaths()
	s.SSHConfig = defaults.SSHConfig
	s.ProfilesDir = defaults.ProfilesDir
	s.WorkspacesDir = defaults.WorkspacesDir

	if path == "" {
		path = DefaultSettingsPath()
	}

	if _, err := toml.DecodeFile(path, s); err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("cannot load settings %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks settings for values the pipeline cannot work with.
func (s *Settings) Validate() error {
	if s.AuthorityMarker == "" {
		return fmt.Errorf("authority_marker cannot be empty")
	}
	if strings.Contains(s.AuthorityMarker, "+") {
		return fmt.Errorf("authority_marker %q cannot contain %q (it separates marker from hostname)", s.AuthorityMarker, "+")
	}
	if s.SSHConfig == "" {
		return fmt.Errorf("ssh_config cannot be empty")
	}
	return nil
}

// Paths returns the filesystem locations from these settings.
func (s *Settings) Paths() *Paths {
	return &Paths{
		SSHConfig:     s.SSHConfig,
		ProfilesDir:   s.ProfilesDir,
		WorkspacesDir: s.WorkspacesDir,
	}
}
