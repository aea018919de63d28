package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ExportStepKind identifies which artifact a step wrote
type ExportStepKind string

const (
	StepInterface ExportStepKind = "interface"
	StepRegistry  ExportStepKind = "registry"
)

// ExportStep is one completed artifact write
type ExportStep struct {
	Identity domain.ContractIdentity `json:"contract" yaml:"contract"`
	Kind     ExportStepKind          `json:"kind" yaml:"kind"`
	Path     string                  `json:"path" yaml:"path"`
	Address  string                  `json:"address" yaml:"address"`
	Added    bool                    `json:"added" yaml:"added"` // false when the address was already recorded
}

// ExportAllParams contains parameters for exporting a batch of deployed contracts.
// Either Contracts or the positionally aligned Identities and Addresses are set.
type ExportAllParams struct {
	Identities []domain.ContractIdentity
	Addresses  []string
	Contracts  []domain.ContractAddress
}

// ExportResult lists every step completed before the run finished or failed
type ExportResult struct {
	NetworkID domain.NetworkID `json:"networkId" yaml:"networkId"`
	Steps     []ExportStep     `json:"steps" yaml:"steps"`
}

// ExportAll exports interfaces and synchronizes address registries for a batch of contracts
type ExportAll struct {
	exports  *config.ExportConfig
	network  NetworkIdentifier
	exporter *ExportInterface
	syncer   *SyncAddress
	progress ProgressSink
	log      *slog.Logger
}

// NewExportAll creates a new ExportAll use case
func NewExportAll(
	exports *config.ExportConfig,
	network NetworkIdentifier,
	exporter *ExportInterface,
	syncer *SyncAddress,
	progress ProgressSink,
	log *slog.Logger,
) *ExportAll {
	return &ExportAll{
		exports:  exports,
		network:  network,
		exporter: exporter,
		syncer:   syncer,
		progress: progress,
		log:      log.With("component", "ExportAll"),
	}
}

// Run exports every interface, then syncs every address, both in input order. The
// registry records the address as returned by the resolver. Run stops at the first
// failure and returns the steps completed so far along with the error. Files written
// before a failure are kept.
func (uc *ExportAll) Run(ctx context.Context, params ExportAllParams) (*ExportResult, error) {
	contracts, err := uc.validate(params)
	if err != nil {
		return nil, err
	}

	networkID, err := uc.network.Current(ctx)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		NetworkID: networkID,
		Steps:     make([]ExportStep, 0, 2*len(contracts)),
	}
	total := 2 * len(contracts)

	uc.log.Debug("starting export", "contracts", len(contracts), "network", networkID)

	for i, c := range contracts {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "interface",
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Exporting %s interface", c.Identity),
			Spinner: true,
		})

		step, err := uc.exporter.Run(ctx, c.Identity, c.Address)
		if err != nil {
			uc.progress.Error(fmt.Sprintf("Failed to export %s interface", c.Identity))
			return result, err
		}
		result.Steps = append(result.Steps, *step)

		// Record the address as confirmed by the resolver
		contracts[i].Address = step.Address
	}

	for i, c := range contracts {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "registry",
			Current: len(contracts) + i + 1,
			Total:   total,
			Message: fmt.Sprintf("Recording %s address on network %s", c.Identity, networkID),
			Spinner: true,
		})

		step, err := uc.syncer.Run(ctx, c.Identity, c.Address, networkID)
		if err != nil {
			uc.progress.Error(fmt.Sprintf("Failed to record %s address", c.Identity))
			return result, err
		}
		result.Steps = append(result.Steps, *step)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: total,
		Total:   total,
		Message: fmt.Sprintf("Exported %d contracts", len(contracts)),
	})

	return result, nil
}

// validate pairs the input and checks every identity before anything is written
func (uc *ExportAll) validate(params ExportAllParams) ([]domain.ContractAddress, error) {
	if len(uc.exports.Identities()) == 0 {
		return nil, domain.ConfigurationError("export all", fmt.Errorf("no [[contracts]] configured for export"))
	}

	contracts := slices.Clone(params.Contracts)
	if len(params.Identities) > 0 || len(params.Addresses) > 0 {
		if len(contracts) > 0 {
			return nil, domain.ConfigurationError("export all",
				fmt.Errorf("contracts and identity/address lists are mutually exclusive"))
		}
		pairs, err := domain.PairContracts(params.Identities, params.Addresses)
		if err != nil {
			return nil, err
		}
		contracts = pairs
	}

	if len(contracts) == 0 {
		return nil, domain.ConfigurationError("export all", fmt.Errorf("no contracts to export"))
	}

	for _, c := range contracts {
		if _, err := uc.exports.Lookup(c.Identity); err != nil {
			return nil, err
		}
		if c.Address == "" {
			return nil, domain.ConfigurationError("export all", fmt.Errorf("missing address for %s", c.Identity))
		}
	}

	return contracts, nil
}
