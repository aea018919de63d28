package usecase

import (
	"context"
	"log/slog"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// SyncAddress merges a deployed address into the identity's address registry file
type SyncAddress struct {
	exports *config.ExportConfig
	store   ArtifactStore
	log     *slog.Logger
}

// NewSyncAddress creates a new SyncAddress use case
func NewSyncAddress(exports *config.ExportConfig, store ArtifactStore, log *slog.Logger) *SyncAddress {
	return &SyncAddress{
		exports: exports,
		store:   store,
		log:     log.With("component", "SyncAddress"),
	}
}

// Run loads the registry, appends address under network unless it is already there,
// and writes the registry back. Entries under other networks are left untouched.
func (uc *SyncAddress) Run(ctx context.Context, identity domain.ContractIdentity, address string, network domain.NetworkID) (*ExportStep, error) {
	paths, err := uc.exports.Lookup(identity)
	if err != nil {
		return nil, err
	}

	registry, err := uc.store.ReadRegistry(ctx, paths.Registry)
	if err != nil {
		return nil, err
	}

	added := registry.Add(network, address)

	// Written even when nothing was added so the file is always in normalized form
	if err := uc.store.WriteRegistry(ctx, paths.Registry, registry); err != nil {
		return nil, err
	}

	uc.log.Debug("synced address",
		"contract", identity,
		"network", network,
		"address", address,
		"added", added,
		"path", paths.Registry,
	)

	return &ExportStep{
		Identity: identity,
		Kind:     StepRegistry,
		Path:     paths.Registry,
		Address:  address,
		Added:    added,
	}, nil
}
