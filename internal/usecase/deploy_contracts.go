package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ErrDeployCancelled is returned when the operator declines the deployment
var ErrDeployCancelled = errors.New("deployment cancelled")

// DeployContractsParams contains parameters for running the deploy plan
type DeployContractsParams struct {
	SkipExport bool
}

// DeployTransaction is a post-deploy call sent by the plan
type DeployTransaction struct {
	Step   string `json:"step" yaml:"step"`
	TxHash string `json:"txHash" yaml:"txHash"`
}

// DeployContractsResult contains the result of a deploy run
type DeployContractsResult struct {
	Network      string              `json:"network" yaml:"network"`
	NetworkID    domain.NetworkID    `json:"networkId" yaml:"networkId"`
	Deployed     []DeployedContract  `json:"deployed" yaml:"deployed"`
	Transactions []DeployTransaction `json:"transactions" yaml:"transactions"`
	Export       *ExportResult       `json:"export,omitempty" yaml:"export,omitempty"`
}

// DeployContracts runs the configured deploy plan and exports the deployed contracts
type DeployContracts struct {
	cfg       *config.RuntimeConfig
	deployer  ContractDeployer
	network   NetworkIdentifier
	confirmer Confirmer
	exporter  *ExportAll
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContracts creates a new DeployContracts use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	deployer ContractDeployer,
	network NetworkIdentifier,
	confirmer Confirmer,
	exporter *ExportAll,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContracts {
	return &DeployContracts{
		cfg:       cfg,
		deployer:  deployer,
		network:   network,
		confirmer: confirmer,
		exporter:  exporter,
		progress:  progress,
		log:       log.With("component", "DeployContracts"),
	}
}

// Run executes every deploy step in order, then hands the contracts deployed in this
// run to ExportAll in the order they are configured for export.
func (uc *DeployContracts) Run(ctx context.Context, params DeployContractsParams) (*DeployContractsResult, error) {
	if len(uc.cfg.Deploy) == 0 {
		return nil, domain.ConfigurationError("deploy contracts", fmt.Errorf("no [[deploy]] steps configured"))
	}
	if uc.cfg.Network == nil {
		return nil, domain.ConfigurationError("deploy contracts", fmt.Errorf("network %q is not configured", uc.cfg.NetworkName))
	}
	if err := checkReferences(uc.cfg.Deploy); err != nil {
		return nil, err
	}

	networkID, err := uc.network.Current(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.confirm(ctx, networkID); err != nil {
		return nil, err
	}

	result := &DeployContractsResult{
		Network:      uc.cfg.Network.Name,
		NetworkID:    networkID,
		Deployed:     []DeployedContract{},
		Transactions: []DeployTransaction{},
	}
	addresses := make(map[domain.ContractIdentity]string)

	for i, step := range uc.cfg.Deploy {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "deploy",
			Current: i + 1,
			Total:   len(uc.cfg.Deploy),
			Message: step.String(),
			Spinner: true,
		})

		args := substituteReferences(step.Args, addresses)

		if step.IsCall() {
			target, method, _ := step.CallTarget()
			txHash, err := uc.deployer.Transact(ctx, target, addresses[target], method, args)
			if err != nil {
				uc.progress.Error(fmt.Sprintf("Failed: %s", step))
				return result, fmt.Errorf("step %d (%s): %w", i+1, step, err)
			}
			result.Transactions = append(result.Transactions, DeployTransaction{Step: step.String(), TxHash: txHash})
			uc.log.Info("sent transaction", "step", step.String(), "tx", txHash)
			continue
		}

		deployed, err := uc.deployer.Deploy(ctx, step.Contract, args)
		if err != nil {
			uc.progress.Error(fmt.Sprintf("Failed: %s", step))
			return result, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		addresses[step.Contract] = deployed.Address
		result.Deployed = append(result.Deployed, *deployed)
		uc.log.Info("deployed contract", "contract", deployed.Identity, "address", deployed.Address, "tx", deployed.TxHash)
	}

	// Ends the deploy stage before anything else is reported
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "deployed",
		Current: len(uc.cfg.Deploy),
		Total:   len(uc.cfg.Deploy),
		Message: fmt.Sprintf("Deployed %d contracts, sent %d transactions", len(result.Deployed), len(result.Transactions)),
	})

	if params.SkipExport {
		return result, nil
	}

	var contracts []domain.ContractAddress
	for _, identity := range uc.cfg.Exports.Identities() {
		if addr, ok := addresses[identity]; ok {
			contracts = append(contracts, domain.ContractAddress{Identity: identity, Address: addr})
		}
	}
	if len(contracts) == 0 {
		uc.progress.Info("No deployed contract is configured for export")
		return result, nil
	}

	result.Export, err = uc.exporter.Run(ctx, ExportAllParams{Contracts: contracts})
	return result, err
}

func (uc *DeployContracts) confirm(ctx context.Context, networkID domain.NetworkID) error {
	if uc.cfg.Network.IsLocal() || uc.cfg.AssumeYes || uc.cfg.NonInteractive {
		return nil
	}

	ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Run %d deploy steps on %s (chain %s)",
		len(uc.cfg.Deploy), uc.cfg.Network.Name, networkID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeployCancelled
	}
	return nil
}

// checkReferences makes sure every @Name argument and call target refers to a
// contract created by an earlier step
func checkReferences(steps []config.DeployStep) error {
	created := make(map[domain.ContractIdentity]bool)
	for i, step := range steps {
		for _, arg := range step.Args {
			if ref, ok := config.ContractRef(arg); ok && !created[ref] {
				return domain.ConfigurationError("deploy contracts",
					fmt.Errorf("step %d (%s): %s is used before it is deployed", i+1, step, ref))
			}
		}
		if step.IsCall() {
			target, _, err := step.CallTarget()
			if err != nil {
				return domain.ConfigurationError("deploy contracts", fmt.Errorf("step %d: %w", i+1, err))
			}
			if !created[target] {
				return domain.ConfigurationError("deploy contracts",
					fmt.Errorf("step %d (%s): %s is called before it is deployed", i+1, step, target))
			}
			continue
		}
		created[step.Contract] = true
	}
	return nil
}

func substituteReferences(args []string, addresses map[domain.ContractIdentity]string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if ref, ok := config.ContractRef(arg); ok {
			out[i] = addresses[ref]
			continue
		}
		out[i] = arg
	}
	return out
}
