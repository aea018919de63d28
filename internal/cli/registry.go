package cli

import (
	"github.com/gnft-labs/frontsync/internal/cli/render"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// NewRegistryCmd creates the registry command
func NewRegistryCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "registry [NAME...]",
		Short: "Show the addresses recorded for exported contracts",
		Long: `Show the address registry of each exported contract, grouped by chain id.
Without arguments every contract in frontsync.toml is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowRegistryParams{
				Identities: lo.Map(args, func(name string, _ int) domain.ContractIdentity {
					return domain.ContractIdentity(name)
				}),
			}
			result, err := app.ShowRegistry.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			format := render.FormatTable
			switch {
			case app.Config.JSON:
				format = render.FormatJSON
			case asYAML:
				format = render.FormatYAML
			}

			return render.NewRegistryRenderer(cmd.OutOrStdout(), useColor()).RenderRegistries(result, format)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output in YAML format")

	return cmd
}
