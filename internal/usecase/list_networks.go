package usecase

import (
	"context"
	"encoding/json"

	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Current  string          `json:"current"`
	Networks []NetworkStatus `json:"networks"`
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId,omitempty"`
	RPCURL  string `json:"rpcUrl,omitempty"`
	Local   bool   `json:"local"`
	Error   error  `json:"-"`
}

// MarshalJSON reports Error as its message
func (s NetworkStatus) MarshalJSON() ([]byte, error) {
	type status NetworkStatus
	out := struct {
		status
		Error string `json:"error,omitempty"`
	}{status: status(s)}
	if s.Error != nil {
		out.Error = s.Error.Error()
	}
	return json.Marshal(out)
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	current  string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		current:  cfg.NetworkName,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.resolver.NetworkNames()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		// Resolve to get the chain ID, asking the node when it is not configured
		network, id, err := uc.resolver.ResolveNetwork(ctx, name)
		if network != nil {
			status.RPCURL = network.RPCURL
			status.Local = network.IsLocal()
		}
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = uint64(id)
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Current:  uc.current,
		Networks: networks,
	}, nil
}
