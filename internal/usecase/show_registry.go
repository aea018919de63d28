package usecase

import (
	"context"
	"errors"
	"io/fs"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ShowRegistryParams contains parameters for showing address registries
type ShowRegistryParams struct {
	Identities []domain.ContractIdentity // empty means every configured contract
}

// RegistryEntry is the exported state of one contract identity
type RegistryEntry struct {
	Identity     domain.ContractIdentity
	Paths        domain.ArtifactPaths
	HasInterface bool
	Registry     *domain.AddressRegistry
}

// ShowRegistryResult contains the registries in configuration or request order
type ShowRegistryResult struct {
	Entries []RegistryEntry
}

// ShowRegistry reads the exported artifacts without modifying them
type ShowRegistry struct {
	exports *config.ExportConfig
	store   ArtifactStore
}

// NewShowRegistry creates a new ShowRegistry use case
func NewShowRegistry(exports *config.ExportConfig, store ArtifactStore) *ShowRegistry {
	return &ShowRegistry{
		exports: exports,
		store:   store,
	}
}

// Run executes the use case
func (uc *ShowRegistry) Run(ctx context.Context, params ShowRegistryParams) (*ShowRegistryResult, error) {
	identities := params.Identities
	if len(identities) == 0 {
		identities = uc.exports.Identities()
	}

	result := &ShowRegistryResult{Entries: make([]RegistryEntry, 0, len(identities))}
	for _, identity := range identities {
		paths, err := uc.exports.Lookup(identity)
		if err != nil {
			return nil, err
		}

		registry, err := uc.store.ReadRegistry(ctx, paths.Registry)
		if err != nil {
			return nil, err
		}

		hasInterface := true
		if _, err := uc.store.ReadInterface(ctx, paths.Interface); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
			hasInterface = false
		}

		result.Entries = append(result.Entries, RegistryEntry{
			Identity:     identity,
			Paths:        paths,
			HasInterface: hasInterface,
			Registry:     registry,
		})
	}

	return result, nil
}
