// Package testutil provides fixture helpers shared by sshtint tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"sshtint/internal/config"
)

// TestEnv holds a self-contained settings fixture on a temp directory.
type TestEnv struct {
	T        *testing.T
	TmpDir   string
	Settings *config.Settings
}

// NewTestEnv creates temp paths and settings for a full pipeline test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	return &TestEnv{
		T:      t,
		TmpDir: tmpDir,
		Settings: &config.Settings{
			SSHConfig:       filepath.Join(tmpDir, "ssh_config"),
			ProfilesDir:     filepath.Join(tmpDir, "DynamicProfiles"),
			WorkspacesDir:   filepath.Join(tmpDir, "workspaces"),
			AuthorityMarker: config.DefaultAuthorityMarker,
		},
	}
}

// WriteSSHConfig writes the fixture SSH config content.
func (e *TestEnv) WriteSSHConfig(content string) {
	e.T.Helper()
	if err := os.WriteFile(e.Settings.SSHConfig, []byte(content), 0600); err != nil {
		e.T.Fatalf("Failed to write ssh config: %v", err)
	}
}

// ReadFile reads a file under the temp dir, failing the test on error.
func (e *TestEnv) ReadFile(path string) []byte {
	e.T.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}

// ProfilesFile returns the path of the generated profiles file.
func (e *TestEnv) ProfilesFile() string {
	return filepath.Join(e.Settings.ProfilesDir, config.ProfilesFileName)
}
