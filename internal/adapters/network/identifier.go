package network

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ChainIDReader asks nodes for their chain id
type ChainIDReader interface {
	ChainID(ctx context.Context) (uint64, error)
	ChainIDAt(ctx context.Context, rpcURL string) (uint64, error)
}

// IdentifierAdapter resolves network identifiers from configuration, asking the
// node when a network has no chain_id
type IdentifierAdapter struct {
	cfg   *config.RuntimeConfig
	chain ChainIDReader

	mu      sync.Mutex
	current *domain.NetworkID
}

// NewIdentifierAdapter creates a new network identifier adapter
func NewIdentifierAdapter(cfg *config.RuntimeConfig, chain ChainIDReader) *IdentifierAdapter {
	return &IdentifierAdapter{
		cfg:   cfg,
		chain: chain,
	}
}

// Current returns the identifier of the selected network. The result is cached for
// the rest of the invocation.
func (a *IdentifierAdapter) Current(ctx context.Context) (domain.NetworkID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != nil {
		return *a.current, nil
	}

	network := a.cfg.Network
	if network == nil {
		return 0, domain.ConfigurationError("resolve network identifier", a.unknownNetwork(a.cfg.NetworkName))
	}

	id, err := a.resolve(ctx, network, a.chain.ChainID)
	if err != nil {
		return 0, err
	}
	a.current = &id
	return id, nil
}

// NetworkNames returns the configured network names in sorted order
func (a *IdentifierAdapter) NetworkNames() []string {
	names := lo.Keys(a.cfg.Networks)
	sort.Strings(names)
	return names
}

// ResolveNetwork returns the configuration and identifier of a named network
func (a *IdentifierAdapter) ResolveNetwork(ctx context.Context, name string) (*config.Network, domain.NetworkID, error) {
	network, ok := a.cfg.Networks[name]
	if !ok {
		return nil, 0, domain.ConfigurationError("resolve network", a.unknownNetwork(name))
	}

	id, err := a.resolve(ctx, network, func(ctx context.Context) (uint64, error) {
		return a.chain.ChainIDAt(ctx, network.RPCURL)
	})
	return network, id, err
}

func (a *IdentifierAdapter) resolve(ctx context.Context, network *config.Network, ask func(context.Context) (uint64, error)) (domain.NetworkID, error) {
	const op = "resolve network identifier"

	if network.ChainID != 0 {
		return domain.NetworkID(network.ChainID), nil
	}
	if a.cfg.Offline {
		return 0, domain.ConfigurationError(op,
			fmt.Errorf("network %q has no chain_id and --offline prevents asking the node", network.Name))
	}
	if network.RPCURL == "" {
		return 0, domain.ConfigurationError(op, fmt.Errorf("network %q has neither chain_id nor rpc_url", network.Name))
	}

	id, err := ask(ctx)
	if err != nil {
		return 0, domain.ConfigurationError(op, fmt.Errorf("could not determine chain id of %q: %w", network.Name, err))
	}
	return domain.NetworkID(id), nil
}

func (a *IdentifierAdapter) unknownNetwork(name string) error {
	names := a.NetworkNames()
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return fmt.Errorf("network %q is not configured (available: %s)", name, strings.Join(names, ", "))
	}
	return fmt.Errorf("network %q is not configured (did you mean %s?)", name, matches[0].Str)
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.NetworkIdentifier = (*IdentifierAdapter)(nil)
	_ usecase.NetworkResolver   = (*IdentifierAdapter)(nil)
)
