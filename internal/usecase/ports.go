package usecase

import (
	"context"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

// ContractResolver is the deployment collaborator that confirms a deployed instance
// and exposes its interface description
type ContractResolver interface {
	ResolveDeployedContract(ctx context.Context, identity domain.ContractIdentity, address string) (*domain.ContractHandle, error)
}

// NetworkIdentifier reports the identifier of the active network
type NetworkIdentifier interface {
	Current(ctx context.Context) (domain.NetworkID, error)
}

// NetworkResolver resolves configured networks by name
type NetworkResolver interface {
	NetworkNames() []string
	ResolveNetwork(ctx context.Context, name string) (*config.Network, domain.NetworkID, error)
}

// ArtifactStore persists the frontend artifact files. Paths are relative to the
// frontend directory.
type ArtifactStore interface {
	ReadInterface(ctx context.Context, path string) (domain.InterfaceDescription, error)
	WriteInterface(ctx context.Context, path string, description domain.InterfaceDescription) error
	ReadRegistry(ctx context.Context, path string) (*domain.AddressRegistry, error)
	WriteRegistry(ctx context.Context, path string, registry *domain.AddressRegistry) error
}

// DeployedContract is the outcome of a contract creation
type DeployedContract struct {
	Identity domain.ContractIdentity `json:"contract" yaml:"contract"`
	Address  string                  `json:"address" yaml:"address"`
	TxHash   string                  `json:"txHash" yaml:"txHash"`
}

// ContractDeployer creates contracts and sends transactions on the active network
type ContractDeployer interface {
	Deploy(ctx context.Context, identity domain.ContractIdentity, args []string) (*DeployedContract, error)
	Transact(ctx context.Context, identity domain.ContractIdentity, address, method string, args []string) (string, error)
}

// Confirmer asks the operator before irreversible actions
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
