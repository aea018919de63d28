package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gnft-labs/frontsync/internal/adapters/progress"
	"github.com/gnft-labs/frontsync/internal/app"
	"github.com/gnft-labs/frontsync/internal/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "frontsync",
		Short: "Deploy contracts and sync their ABIs and addresses into a frontend",
		Long: `frontsync deploys the contracts listed in frontsync.toml and keeps the
frontend's copies of their ABIs and per-network addresses up to date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// A missing project root is reported by the provider unless
			// FRONTSYNC_PROJECT_ROOT points somewhere else
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = ""
			}

			v := config.SetupViper(projectRoot, cmd)
			cfg, err := config.Provider(v)
			if err != nil {
				return err
			}

			var sink usecase.ProgressSink = progress.NewNopSink()
			if !cfg.JSON {
				sink = progress.NewSpinnerSink(cmd.OutOrStdout())
			}

			appInstance, cleanup, err := app.InitApp(cfg, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cancel := context.CancelFunc(func() {})
			if cfg.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			}
			cobra.OnFinalize(func() {
				cancel()
				cleanup()
			})

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., localhost, goerli)")
	rootCmd.PersistentFlags().Bool("offline", false, "Do not contact the network when resolving contracts")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("frontend", "", "Directory exported files are written to")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this long (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	// Management commands
	registryCmd := NewRegistryCmd()
	registryCmd.GroupID = "management"
	rootCmd.AddCommand(registryCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// stopProgress halts a running spinner so results are not drawn over
func stopProgress(app *app.App) {
	if s, ok := app.Progress.(interface{ Stop() }); ok {
		s.Stop()
	}
}

// useColor reports whether renderers should emit ANSI colors
func useColor() bool {
	return !color.NoColor
}
