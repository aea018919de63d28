package adapters

import (
	"github.com/gnft-labs/frontsync/internal/adapters/blockchain"
	"github.com/gnft-labs/frontsync/internal/adapters/contracts"
	"github.com/gnft-labs/frontsync/internal/adapters/fs"
	"github.com/gnft-labs/frontsync/internal/adapters/interactive"
	"github.com/gnft-labs/frontsync/internal/adapters/network"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/google/wire"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.ProvideFs,
	fs.NewArtifactStoreAdapter,
	wire.Bind(new(usecase.ArtifactStore), new(*fs.ArtifactStoreAdapter)),
)

// ContractsSet provides artifact-based contract resolution
var ContractsSet = wire.NewSet(
	contracts.NewArtifactLoader,
	contracts.NewArtifactResolver,
	wire.Bind(new(usecase.ContractResolver), new(*contracts.ArtifactResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.ProvideClient,
	wire.Bind(new(contracts.CodeReader), new(*blockchain.Client)),
	wire.Bind(new(network.ChainIDReader), new(*blockchain.Client)),

	blockchain.NewDeployerAdapter,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.DeployerAdapter)),
)

// NetworkSet provides network identification
var NetworkSet = wire.NewSet(
	network.NewIdentifierAdapter,
	wire.Bind(new(usecase.NetworkIdentifier), new(*network.IdentifierAdapter)),
	wire.Bind(new(usecase.NetworkResolver), new(*network.IdentifierAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ContractsSet,
	BlockchainSet,
	NetworkSet,
	InteractiveSet,
)
