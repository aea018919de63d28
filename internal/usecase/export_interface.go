package usecase

import (
	"context"
	"log/slog"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ExportInterface writes a deployed contract's interface description to its frontend file
type ExportInterface struct {
	exports  *config.ExportConfig
	resolver ContractResolver
	store    ArtifactStore
	log      *slog.Logger
}

// NewExportInterface creates a new ExportInterface use case
func NewExportInterface(
	exports *config.ExportConfig,
	resolver ContractResolver,
	store ArtifactStore,
	log *slog.Logger,
) *ExportInterface {
	return &ExportInterface{
		exports:  exports,
		resolver: resolver,
		store:    store,
		log:      log.With("component", "ExportInterface"),
	}
}

// Run resolves the instance at address and replaces the identity's interface file
func (uc *ExportInterface) Run(ctx context.Context, identity domain.ContractIdentity, address string) (*ExportStep, error) {
	paths, err := uc.exports.Lookup(identity)
	if err != nil {
		return nil, err
	}

	handle, err := uc.resolver.ResolveDeployedContract(ctx, identity, address)
	if err != nil {
		if domain.KindOf(err) == "" {
			err = domain.ResolutionError("resolve deployed contract", identity, err)
		}
		return nil, err
	}

	if err := uc.store.WriteInterface(ctx, paths.Interface, handle.Interface); err != nil {
		return nil, err
	}

	uc.log.Debug("exported interface", "contract", identity, "address", handle.Address, "path", paths.Interface)

	return &ExportStep{
		Identity: identity,
		Kind:     StepInterface,
		Path:     paths.Interface,
		Address:  handle.Address,
		Added:    true,
	}, nil
}
