package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sshtint/internal/coordinator"
	"sshtint/internal/errors"
	"sshtint/internal/logging"
	"sshtint/internal/sink"
)

var watchWorkspace string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the SSH config and keep colors in sync",
	Long: `watch runs the full pipeline on startup and again every time the SSH
config changes. Send SIGHUP for an immediate refresh; SIGINT or SIGTERM
stops the watch.

With --workspace, the resolved host color is also applied to that
workspace's .vscode/settings.json and cleared when it no longer applies.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchWorkspace, "workspace", "", "Workspace directory to apply the resolved color to")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return errors.ConfigError("cannot load settings", err)
	}

	opts := []coordinator.Option{}
	if watchWorkspace != "" {
		opts = append(opts, coordinator.WithSettingsPatcher(sink.NewSettingsPatcher(watchWorkspace)))
	}
	coord := coordinator.New(settings, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// SIGHUP is the user-triggered refresh signal.
	refresh := make(chan os.Signal, 1)
	signal.Notify(refresh, syscall.SIGHUP)
	defer signal.Stop(refresh)
	go func() {
		for range refresh {
			logging.Info("refresh requested")
			coord.Refresh()
		}
	}()

	logInfo("Watching %s (SIGHUP to refresh, Ctrl-C to stop)", settings.SSHConfig)

	if err := coord.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
