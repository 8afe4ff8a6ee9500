package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"sshtint/internal/config"
	"sshtint/internal/logging"
)

var (
	verbose      bool
	jsonOutput   bool
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "sshtint",
	Short: "Propagate SSH host colors to iTerm2 and VS Code",
	Long: `sshtint reads color annotations from your SSH config and keeps your
terminal and editor colored per host.

Annotate ~/.ssh/config with comments like:

  # iterm-color: #1a1a2e
  # vscode-color: #1a1a2e
  Host dev-server
      HostName dev.example.com

sshtint generates iTerm2 Dynamic Profiles and VS Code workspace files from
these annotations, and can watch the config to keep them in sync.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Settings file (default ~/.config/sshtint/config.toml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadSettings loads the tool settings honoring the --config flag.
func loadSettings() (*config.Settings, error) {
	return config.LoadSettings(settingsPath)
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
