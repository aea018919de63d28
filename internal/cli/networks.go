package cli

import (
	"github.com/gnft-labs/frontsync/internal/cli/render"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks from frontsync.toml",
		Long: `List all networks configured in the [networks] section of frontsync.toml
along with the built-in local networks.

Networks without a configured chain_id are asked for it over RPC unless --offline is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result)
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout(), useColor()).RenderNetworksList(result)
		},
	}

	return cmd
}
