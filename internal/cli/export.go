package cli

import (
	"fmt"
	"strings"

	"github.com/gnft-labs/frontsync/internal/cli/render"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export NAME=ADDRESS...",
		Short: "Export ABIs and record addresses for deployed contracts",
		Long: `Export the ABI of each given contract and add its address to the contract's
address registry under the current network's chain id.

All ABIs are written first, then all registries, in the order given.

Examples:
  frontsync export Token=0x5FbDB2315678afecb367f032d93F642f64180aa3
  frontsync export BasicGNFT=0x... Token=0x... --network goerli`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contracts, err := parseContractArgs(args)
			if err != nil {
				return err
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, runErr := app.ExportAll.Run(cmd.Context(), usecase.ExportAllParams{Contracts: contracts})
			stopProgress(app)

			if app.Config.JSON {
				if result != nil {
					if err := render.WriteJSON(cmd.OutOrStdout(), result); err != nil {
						return err
					}
				}
				return runErr
			}

			if err := render.NewExportRenderer(cmd.OutOrStdout(), useColor()).RenderExport(result); err != nil {
				return err
			}
			return runErr
		},
	}

	return cmd
}

// parseContractArgs splits NAME=ADDRESS arguments, keeping their order
func parseContractArgs(args []string) ([]domain.ContractAddress, error) {
	contracts := make([]domain.ContractAddress, 0, len(args))
	for _, arg := range args {
		name, address, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		address = strings.TrimSpace(address)
		if !ok || name == "" || address == "" {
			return nil, domain.ConfigurationError("parse arguments",
				fmt.Errorf("invalid contract %q, expected NAME=ADDRESS", arg))
		}
		contracts = append(contracts, domain.ContractAddress{
			Identity: domain.ContractIdentity(name),
			Address:  address,
		})
	}
	return contracts, nil
}
