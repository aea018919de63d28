package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gnft-labs/frontsync/internal/adapters/contracts"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
)

// DefaultDevKey is the first prefunded account of anvil and hardhat node, used on
// local networks that configure no private_key
const DefaultDevKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// DeployerAdapter creates contracts from compiled artifacts and sends plan calls
type DeployerAdapter struct {
	client  *Client
	loader  *contracts.ArtifactLoader
	network *config.Network
	log     *slog.Logger
}

// NewDeployerAdapter creates a new deployer for the active network
func NewDeployerAdapter(client *Client, loader *contracts.ArtifactLoader, cfg *config.RuntimeConfig, log *slog.Logger) *DeployerAdapter {
	return &DeployerAdapter{
		client:  client,
		loader:  loader,
		network: cfg.Network,
		log:     log.With("component", "DeployerAdapter"),
	}
}

// Deploy creates identity with the given constructor arguments and waits for the receipt
func (d *DeployerAdapter) Deploy(ctx context.Context, identity domain.ContractIdentity, args []string) (*usecase.DeployedContract, error) {
	artifact, err := d.loader.Load(identity)
	if err != nil {
		return nil, err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return nil, domain.ResolutionError("deploy", identity, err)
	}
	code, err := artifact.CreationCode()
	if err != nil {
		return nil, domain.ResolutionError("deploy", identity, err)
	}

	params, err := CoerceArgs(parsed.Constructor.Inputs, args)
	if err != nil {
		return nil, domain.ConfigurationError("deploy "+identity.String(), err)
	}

	opts, err := d.transactor(ctx)
	if err != nil {
		return nil, err
	}
	backend, err := d.client.Dial(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, parsed, code, backend, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", identity, err)
	}
	d.log.Debug("deployment sent", "contract", identity, "tx", tx.Hash().Hex())

	if err := d.waitSuccess(ctx, backend, tx); err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", identity, err)
	}

	return &usecase.DeployedContract{
		Identity: identity,
		Address:  address.Hex(),
		TxHash:   tx.Hash().Hex(),
	}, nil
}

// Transact calls method on the instance of identity at address and waits for the receipt
func (d *DeployerAdapter) Transact(ctx context.Context, identity domain.ContractIdentity, address, method string, args []string) (string, error) {
	artifact, err := d.loader.Load(identity)
	if err != nil {
		return "", err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return "", domain.ResolutionError("transact", identity, err)
	}

	m, ok := parsed.Methods[method]
	if !ok {
		return "", domain.ConfigurationError("transact", fmt.Errorf("%s has no method %q", identity, method))
	}
	params, err := CoerceArgs(m.Inputs, args)
	if err != nil {
		return "", domain.ConfigurationError(fmt.Sprintf("call %s.%s", identity, method), err)
	}

	opts, err := d.transactor(ctx)
	if err != nil {
		return "", err
	}
	backend, err := d.client.Dial(ctx)
	if err != nil {
		return "", err
	}

	contract := bind.NewBoundContract(common.HexToAddress(address), parsed, backend, backend, backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		return "", fmt.Errorf("%s.%s failed: %w", identity, method, err)
	}

	if err := d.waitSuccess(ctx, backend, tx); err != nil {
		return "", fmt.Errorf("%s.%s failed: %w", identity, method, err)
	}
	return tx.Hash().Hex(), nil
}

func (d *DeployerAdapter) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	key, err := d.signingKey()
	if err != nil {
		return nil, err
	}

	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (d *DeployerAdapter) signingKey() (*ecdsa.PrivateKey, error) {
	if d.network == nil {
		return nil, domain.ConfigurationError("load signing key", fmt.Errorf("no network selected"))
	}

	hexKey := d.network.PrivateKey
	if hexKey == "" {
		if !d.network.IsLocal() {
			return nil, domain.ConfigurationError("load signing key",
				fmt.Errorf("network %q has no private_key", d.network.Name))
		}
		hexKey = DefaultDevKey
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, domain.ConfigurationError("load signing key",
			fmt.Errorf("invalid private_key for network %q: %w", d.network.Name, err))
	}
	return key, nil
}

func (d *DeployerAdapter) waitSuccess(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*DeployerAdapter)(nil)
