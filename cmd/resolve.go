package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sshtint/internal/errors"
	"sshtint/internal/payload"
	"sshtint/internal/resolver"
	"sshtint/internal/sink"
	"sshtint/internal/sshconfig"
)

var (
	resolveRemote    string
	resolveWorkspace string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the active host's color and print or apply the editor payload",
	Long: `resolve determines the active remote host from the ambient session
identity (or the --remote flag), looks up its configured color, and prints
the derived editor color customizations as JSON.

With --workspace, the payload is applied to DIR/.vscode/settings.json
instead; when no color applies, a previously applied payload is cleared.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRemote, "remote", "", "Remote authority, e.g. ssh-remote+dev-server (default from environment)")
	resolveCmd.Flags().StringVar(&resolveWorkspace, "workspace", "", "Workspace directory to apply or clear the payload in")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return errors.ConfigError("cannot load settings", err)
	}

	hosts, err := sshconfig.ParseFile(settings.SSHConfig)
	if err != nil {
		return errors.SSHConfigError(settings.SSHConfig, err)
	}

	ctx := resolver.FromEnv(settings.AuthorityMarker)
	if resolveRemote != "" {
		ctx = resolver.ParseAuthority(resolveRemote, settings.AuthorityMarker)
		if !ctx.Remote {
			return errors.ValidationError(fmt.Sprintf("invalid remote authority %q (want %s+<host>)",
				resolveRemote, settings.AuthorityMarker))
		}
	}
	res := resolver.Resolve(ctx, hosts)

	if resolveWorkspace != "" {
		return applyToWorkspace(res)
	}

	switch {
	case !res.Context.Remote:
		logInfo("No active remote session.")
	case res.Record == nil || res.Color() == "":
		logInfo("No color defined for %s", res.Context.Alias)
	default:
		out, err := json.MarshalIndent(payload.Editor(res.Color()), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	}
	return nil
}

func applyToWorkspace(res resolver.Resolution) error {
	patcher := sink.NewSettingsPatcher(resolveWorkspace)

	if res.Color() == "" {
		if err := patcher.Clear(); err != nil {
			return errors.SinkError("editor", err)
		}
		logSuccess("Cleared color customizations in %s", patcher.Path)
		return nil
	}

	if err := patcher.Apply(res.Color()); err != nil {
		return errors.SinkError("editor", err)
	}
	logSuccess("Applied %s to %s", res.Color(), patcher.Path)
	return nil
}
