package cli

import (
	"errors"
	"fmt"

	"github.com/gnft-labs/frontsync/internal/cli/render"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var skipExport bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Run the deploy plan and export the deployed contracts",
		Long: `Run the [[deploy]] steps from frontsync.toml in order on the selected network,
then export the ABI and address of every deployed contract listed under [[contracts]].

Deploying to a non-local network asks for confirmation unless --yes or
--non-interactive is set.

Examples:
  frontsync deploy
  frontsync deploy --network goerli --yes
  frontsync deploy --skip-export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, runErr := app.DeployContracts.Run(cmd.Context(), usecase.DeployContractsParams{
				SkipExport: skipExport,
			})
			stopProgress(app)
			if errors.Is(runErr, usecase.ErrDeployCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Deployment cancelled.")
				return nil
			}

			if app.Config.JSON {
				if result != nil {
					if err := render.WriteJSON(cmd.OutOrStdout(), result); err != nil {
						return err
					}
				}
				return runErr
			}

			if err := render.NewDeployRenderer(cmd.OutOrStdout(), useColor()).RenderDeploy(result); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "Deploy without exporting ABIs and addresses")

	return cmd
}
