package cmd

import (
	"fmt"
	"os"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"sshtint/internal/errors"
	"sshtint/internal/sshconfig"
	"sshtint/internal/tui"
)

var pickSimple bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a configured host and print its ssh command",
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickSimple, "simple", false, "Print a plain listing instead of the interactive picker")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return errors.ConfigError("cannot load settings", err)
	}

	hosts, err := sshconfig.ParseFile(settings.SSHConfig)
	if err != nil {
		return errors.SSHConfigError(settings.SSHConfig, err)
	}

	if pickSimple {
		fmt.Fprint(os.Stdout, tui.SimplePicker(hosts))
		return nil
	}

	if len(hosts) == 0 {
		logInfo("No hosts with color annotations found.")
		return nil
	}

	result, err := tui.RunPicker(hosts)
	if err != nil {
		return err
	}
	if result.Action != tui.ActionConnect || result.Host == nil {
		return nil
	}

	fmt.Fprintln(os.Stdout, shellquote.Join("ssh", result.Host.Alias))
	return nil
}
