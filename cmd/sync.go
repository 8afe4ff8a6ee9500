package cmd

import (
	"github.com/spf13/cobra"

	"sshtint/internal/errors"
	"sshtint/internal/sink"
	"sshtint/internal/sshconfig"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Generate terminal profiles and editor workspaces from the SSH config",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return errors.ConfigError("cannot load settings", err)
	}
	paths := settings.Paths()

	hosts, err := sshconfig.ParseFile(paths.SSHConfig)
	if err != nil {
		return errors.SSHConfigError(paths.SSHConfig, err)
	}

	if len(hosts) == 0 {
		logInfo("No hosts with color annotations found.")
		logInfo("Add comments like '# iterm-color: #1a1a2e' before Host entries.")
		return nil
	}

	logInfo("Found %d hosts with color annotations", len(hosts))

	terminal := sink.NewTerminalProfileSink(paths)
	profileCount, err := terminal.Write(hosts)
	if err != nil {
		logError("Failed to write terminal profiles: %v", err)
		return errors.SinkError("terminal", err)
	}
	logSuccess("Generated iTerm2 profiles: %s (%d profiles)", paths.ProfilesFile(), profileCount)

	editor := &sink.EditorSink{Dir: paths.WorkspacesDir, Marker: settings.AuthorityMarker}
	workspaceCount, err := editor.WriteWorkspaces(hosts)
	if err != nil {
		logError("Failed to write editor workspaces: %v", err)
		return errors.SinkError("editor", err)
	}
	logSuccess("Generated VS Code workspaces: %s (%d files)", paths.WorkspacesDir, workspaceCount)

	logInfo("Restart iTerm2 to load new profiles.")
	logInfo("Open .code-workspace files to launch colored VS Code windows.")
	return nil
}
