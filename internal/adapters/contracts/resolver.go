package contracts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
)

// CodeReader reads deployed bytecode
type CodeReader interface {
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
}

// ArtifactResolver resolves deployed contracts from compiled artifacts, checking
// that the address holds code unless running offline
type ArtifactResolver struct {
	loader  *ArtifactLoader
	code    CodeReader
	offline bool
	log     *slog.Logger
}

// NewArtifactResolver creates a new resolver
func NewArtifactResolver(loader *ArtifactLoader, code CodeReader, cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactResolver {
	return &ArtifactResolver{
		loader:  loader,
		code:    code,
		offline: cfg.Offline,
		log:     log.With("component", "ArtifactResolver"),
	}
}

// ResolveDeployedContract returns the interface description of identity and the
// checksummed form of address
func (r *ArtifactResolver) ResolveDeployedContract(ctx context.Context, identity domain.ContractIdentity, address string) (*domain.ContractHandle, error) {
	const op = "resolve deployed contract"

	if !common.IsHexAddress(address) {
		return nil, domain.ResolutionError(op, identity, fmt.Errorf("invalid address %q", address))
	}
	addr := common.HexToAddress(address)

	artifact, err := r.loader.Load(identity)
	if err != nil {
		return nil, err
	}

	if _, err := artifact.ParsedABI(); err != nil {
		return nil, domain.ResolutionError(op, identity, fmt.Errorf("invalid abi in %s: %w", artifact.Path, err))
	}
	description, err := domain.NewInterfaceDescription(artifact.ABI)
	if err != nil {
		return nil, domain.ResolutionError(op, identity, err)
	}

	if r.offline {
		r.log.Debug("skipping code check", "contract", identity, "address", addr.Hex())
	} else {
		code, err := r.code.CodeAt(ctx, addr)
		if err != nil {
			return nil, domain.ResolutionError(op, identity, fmt.Errorf("failed to read code at %s: %w", addr.Hex(), err))
		}
		if len(code) == 0 {
			return nil, domain.ResolutionError(op, identity, fmt.Errorf("no code at address %s", addr.Hex()))
		}
	}

	r.log.Debug("resolved contract", "contract", identity, "address", addr.Hex(), "artifact", artifact.Path)

	return &domain.ContractHandle{
		Identity:  identity,
		Address:   addr.Hex(),
		Interface: description,
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractResolver = (*ArtifactResolver)(nil)
