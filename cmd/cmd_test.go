package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds test environment state
type testEnv struct {
	tmpDir       string
	settingsFile string
	sshConfig    string
	profilesDir  string
	workspaces   string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	env := &testEnv{
		tmpDir:       tmpDir,
		settingsFile: filepath.Join(tmpDir, "config.toml"),
		sshConfig:    filepath.Join(tmpDir, "ssh_config"),
		profilesDir:  filepath.Join(tmpDir, "DynamicProfiles"),
		workspaces:   filepath.Join(tmpDir, "workspaces"),
	}

	settings := fmt.Sprintf("ssh_config = %q\nprofiles_dir = %q\nworkspaces_dir = %q\n",
		env.sshConfig, env.profilesDir, env.workspaces)
	if err := os.WriteFile(env.settingsFile, []byte(settings), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	return env
}

func (e *testEnv) writeSSHConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(e.sshConfig, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write ssh config: %v", err)
	}
}

func executeCommand(args ...string) (string, string, error) {
	// Reset flag values before each test
	verbose = false
	jsonOutput = false
	settingsPath = ""
	resolveRemote = ""
	resolveWorkspace = ""
	watchWorkspace = ""
	pickSimple = false

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "sshtint") {
		t.Error("Help output should contain 'sshtint'")
	}
	if !strings.Contains(stdout, "Available Commands") {
		t.Error("Help output should list available commands")
	}
}

func TestSyncCommand(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, `# iterm-color: #16213e
# vscode-color: #1a1a2e
Host dev-server
    HostName dev.example.com
`)

	if _, _, err := executeCommand("sync", "--config", env.settingsFile); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(env.profilesDir, "ssh-hosts.json")); err != nil {
		t.Errorf("profiles file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.workspaces, "dev-server.code-workspace")); err != nil {
		t.Errorf("workspace file missing: %v", err)
	}
}

func TestSyncCommand_NoAnnotations(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "Host plain\n    HostName plain.example.com\n")

	if _, _, err := executeCommand("sync", "--config", env.settingsFile); err != nil {
		t.Fatalf("sync with no annotations should succeed, got: %v", err)
	}

	// No sinks are touched when nothing is annotated
	if _, err := os.Stat(filepath.Join(env.profilesDir, "ssh-hosts.json")); !os.IsNotExist(err) {
		t.Error("profiles file should not be created for an empty map")
	}
}

func TestSyncCommand_MissingSSHConfig(t *testing.T) {
	env := setupTestEnv(t)

	if _, _, err := executeCommand("sync", "--config", env.settingsFile); err != nil {
		t.Fatalf("sync with missing ssh config should succeed, got: %v", err)
	}
}

func TestResolveCommand_ApplyToWorkspace(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "# vscode-color: #1a1a2e\nHost dev-server\n")
	project := filepath.Join(env.tmpDir, "project")

	_, _, err := executeCommand("resolve",
		"--config", env.settingsFile,
		"--remote", "ssh-remote+dev-server",
		"--workspace", project)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(project, ".vscode", "settings.json"))
	if err != nil {
		t.Fatalf("settings not written: %v", err)
	}
	if !strings.Contains(string(data), "#1a1a2e") {
		t.Errorf("settings missing color: %s", data)
	}
}

func TestResolveCommand_ClearForUnconfiguredHost(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "# vscode-color: #1a1a2e\nHost dev-server\n")
	project := filepath.Join(env.tmpDir, "project")

	// Apply first, then resolve an unconfigured host against the same
	// workspace; the payload must be cleared.
	if _, _, err := executeCommand("resolve",
		"--config", env.settingsFile,
		"--remote", "ssh-remote+dev-server",
		"--workspace", project); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, _, err := executeCommand("resolve",
		"--config", env.settingsFile,
		"--remote", "ssh-remote+staging-server",
		"--workspace", project); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(project, ".vscode", "settings.json"))
	if err != nil {
		t.Fatalf("settings unreadable: %v", err)
	}
	if strings.Contains(string(data), "titleBar.activeBackground") {
		t.Errorf("managed keys survived the clear: %s", data)
	}
}

func TestResolveCommand_InvalidRemote(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "# vscode-color: #1a1a2e\nHost dev-server\n")

	_, _, err := executeCommand("resolve",
		"--config", env.settingsFile,
		"--remote", "not-an-authority")
	if err == nil {
		t.Fatal("resolve should reject a malformed --remote value")
	}
	if !strings.Contains(err.Error(), "invalid remote authority") {
		t.Errorf("error = %v, want an invalid-authority message", err)
	}
}

func TestPickCommand_Simple(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "# iterm-color: #16213e\nHost dev-server\n")

	if _, _, err := executeCommand("pick", "--simple", "--config", env.settingsFile); err != nil {
		t.Fatalf("pick --simple failed: %v", err)
	}
}

func TestStatusCommand(t *testing.T) {
	env := setupTestEnv(t)
	env.writeSSHConfig(t, "# iterm-color: #16213e\nHost dev-server\n")

	if _, _, err := executeCommand("status", "--config", env.settingsFile); err != nil {
		t.Fatalf("status failed: %v", err)
	}
}
