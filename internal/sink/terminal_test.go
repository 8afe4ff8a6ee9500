package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sshtint/internal/config"
	"sshtint/internal/payload"
	"sshtint/internal/sshconfig"
)

func readProfiles(t *testing.T, dir string) []*payload.Profile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, config.ProfilesFileName))
	if err != nil {
		t.Fatalf("Failed to read profiles file: %v", err)
	}
	var doc struct {
		Profiles []*payload.Profile `json:"Profiles"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to decode profiles file: %v", err)
	}
	return doc.Profiles
}

func TestTerminalProfileSink_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "DynamicProfiles")
	s := &TerminalProfileSink{Dir: dir, HomeDir: "/home/emma"}

	hosts := sshconfig.HostColorMap{
		"beta":  {Alias: "beta", TerminalColor: "#222222"},
		"alpha": {Alias: "alpha", TerminalColor: "#111111"},
		"edit":  {Alias: "edit", EditorColor: "#333333"}, // no terminal color
	}

	n, err := s.Write(hosts)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Write() = %d profiles, want 2", n)
	}

	profiles := readProfiles(t, dir)
	if len(profiles) != 2 {
		t.Fatalf("file has %d profiles, want 2", len(profiles))
	}
	// Sorted by alias for stable output
	if profiles[0].GUID != "ssh-alpha" || profiles[1].GUID != "ssh-beta" {
		t.Errorf("profile order = [%s %s], want [ssh-alpha ssh-beta]", profiles[0].GUID, profiles[1].GUID)
	}
}

func TestTerminalProfileSink_WholesaleReplace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "DynamicProfiles")
	s := &TerminalProfileSink{Dir: dir, HomeDir: "/home/emma"}

	many := sshconfig.HostColorMap{
		"one": {Alias: "one", TerminalColor: "#111111"},
		"two": {Alias: "two", TerminalColor: "#222222"},
	}
	if _, err := s.Write(many); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	fewer := sshconfig.HostColorMap{
		"one": {Alias: "one", TerminalColor: "#111111"},
	}
	if _, err := s.Write(fewer); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	profiles := readProfiles(t, dir)
	if len(profiles) != 1 {
		t.Errorf("file has %d profiles after replace, want 1", len(profiles))
	}
}

func TestTerminalProfileSink_EmptyMap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "DynamicProfiles")
	s := &TerminalProfileSink{Dir: dir, HomeDir: "/home/emma"}

	n, err := s.Write(sshconfig.HostColorMap{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Write() = %d, want 0", n)
	}

	// The file still exists and holds an empty list, clearing stale state.
	if profiles := readProfiles(t, dir); len(profiles) != 0 {
		t.Errorf("file has %d profiles, want 0", len(profiles))
	}
}
