package blockchain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
)

const callTimeout = 5 * time.Second

// Client is a lazily dialed connection to the active network
type Client struct {
	network *config.Network
	name    string

	mu     sync.Mutex
	client *ethclient.Client
}

// NewClient creates a client for the configured network. Nothing is dialed until
// the first call.
func NewClient(cfg *config.RuntimeConfig) *Client {
	return &Client{
		network: cfg.Network,
		name:    cfg.NetworkName,
	}
}

// ProvideClient creates a client along with a cleanup that closes it
func ProvideClient(cfg *config.RuntimeConfig) (*Client, func()) {
	c := NewClient(cfg)
	return c, c.Close
}

// Dial returns the underlying ethclient, connecting on first use
func (c *Client) Dial(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.network == nil {
		return nil, domain.ConfigurationError("connect", fmt.Errorf("network %q is not configured", c.name))
	}
	if c.network.RPCURL == "" {
		return nil, domain.ConfigurationError("connect", fmt.Errorf("network %q has no rpc_url", c.network.Name))
	}

	client, err := ethclient.DialContext(ctx, c.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.client = client
	return client, nil
}

// ChainID asks the node for its chain id
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	client, err := c.Dial(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// CodeAt returns the code deployed at address on the latest block
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	client, err := c.Dial(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	return client.CodeAt(ctx, address, nil)
}

// ChainIDAt dials rpcURL once to read its chain id
func (c *Client) ChainIDAt(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return id.Uint64(), nil
}

// Close closes the connection if one was opened
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
