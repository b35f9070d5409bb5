package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Backend is the subset of an Ethereum client catapult needs. Both
// *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Client is the process-wide chain connection. It dials on first use and
// checks the endpoint serves the expected chain before handing out the backend.
type Client struct {
	network *config.Network
	log     *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	close   func()
}

// NewClient creates a client for the configured network without dialing it
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		network: cfg.Network,
		log:     log,
	}
}

// NewClientFromBackend wraps an existing backend. expectedChainID of 0
// accepts whatever chain the backend reports.
func NewClientFromBackend(backend Backend, expectedChainID uint64, log *slog.Logger) *Client {
	return &Client{
		network: &config.Network{Name: "backend", ChainID: expectedChainID},
		log:     log,
		backend: backend,
	}
}

// Backend returns the connected backend, dialing and verifying the chain ID
// the first time it is called.
func (c *Client) Backend(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil && c.chainID != nil {
		return c.backend, nil
	}

	if c.network == nil {
		return nil, &domain.ConfigurationError{Err: fmt.Errorf("%w: use --network or --rpc-url", domain.ErrNoNetwork)}
	}

	backend := c.backend
	if backend == nil {
		c.log.Debug("dialing RPC endpoint", "network", c.network.Name)
		client, err := ethclient.DialContext(ctx, c.network.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", c.network.Name, err)
		}
		backend = client
		c.close = client.Close
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.network.ChainID != 0 && chainID.Uint64() != c.network.ChainID {
		return nil, fmt.Errorf("%w: expected %d, endpoint reports %d", domain.ErrChainIDMismatch, c.network.ChainID, chainID.Uint64())
	}

	c.log.Debug("connected", "network", c.network.Name, "chainId", chainID)
	c.backend = backend
	c.chainID = chainID
	return backend, nil
}

// ChainID returns the verified chain ID of the endpoint
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if _, err := c.Backend(ctx); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.chainID), nil
}

// BlockNumber returns the latest block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return 0, err
	}
	return backend.BlockNumber(ctx)
}

// BalanceAt returns the account balance at the latest block
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return backend.BalanceAt(ctx, account, nil)
}

// CodeAt returns the runtime bytecode at the latest block
func (c *Client) CodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	backend, err := c.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CodeAt(ctx, contract, nil)
}

// Close releases a dialed connection
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.close != nil {
		c.close()
		c.close = nil
		c.backend = nil
		c.chainID = nil
	}
}

// Ensure the client implements the interface
var _ usecase.ChainReader = (*Client)(nil)
