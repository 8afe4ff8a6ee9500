package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sshtint/internal/errors"
	"sshtint/internal/resolver"
	"sshtint/internal/sshconfig"
	"sshtint/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configured host colors and the current resolution",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return errors.ConfigError("cannot load settings", err)
	}

	hosts, err := sshconfig.ParseFile(settings.SSHConfig)
	if err != nil {
		return errors.SSHConfigError(settings.SSHConfig, err)
	}

	if len(hosts) == 0 {
		logInfo("No hosts with color annotations found in %s", settings.SSHConfig)
		return nil
	}

	aliases := hosts.Aliases()
	sort.Strings(aliases)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HOST\tTERMINAL\tEDITOR\tBADGE\tAUTO-SWITCH")
	fmt.Fprintln(w, "----\t--------\t------\t-----\t-----------")

	for _, alias := range aliases {
		rec := hosts[alias]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			alias,
			colorCell(rec.TerminalColor),
			colorCell(rec.EditorColor),
			rec.SessionLabel(),
			onOff(rec.SwitchEnabled()),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	res := resolver.Resolve(resolver.FromEnv(settings.AuthorityMarker), hosts)
	switch {
	case !res.Context.Remote:
		logInfo("No active remote session.")
	case res.Record == nil:
		logInfo("Connected to %s (no color configured)", res.Context.Alias)
	default:
		color := res.Record.EditorColor
		if color == "" {
			color = res.Record.TerminalColor
		}
		logSuccess("Connected to %s %s", res.Context.Alias, tui.Swatch(color))
	}
	return nil
}

func colorCell(color string) string {
	if color == "" {
		return "-"
	}
	return tui.Swatch(color) + " " + color
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
