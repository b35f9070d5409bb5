package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// defaultLocalRPC is where anvil and hardhat node listen by default
const defaultLocalRPC = "http://127.0.0.1:8545"

// NetworkResolver resolves network names to configurations
type NetworkResolver struct {
	projectRoot   string
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(projectRoot string, foundryConfig *config.FoundryConfig) *NetworkResolver {
	if foundryConfig == nil {
		foundryConfig = &config.FoundryConfig{}
	}
	return &NetworkResolver{
		projectRoot:   projectRoot,
		foundryConfig: foundryConfig,
	}
}

// GetNetworks returns the network names configured in foundry.toml, sorted
func (r *NetworkResolver) GetNetworks() []string {
	names := lo.Keys(r.foundryConfig.RpcEndpoints)
	sort.Strings(names)
	return names
}

// Resolve resolves a network name, or a raw RPC URL, to its configuration.
// It does not contact the endpoint.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		return nil, fmt.Errorf("network not specified")
	}

	if raw, exists := r.foundryConfig.RpcEndpoints[networkName]; exists {
		rpcURL, err := expandRPCEndpoint(networkName, raw)
		if err != nil {
			return nil, err
		}
		return &config.Network{
			Name:   networkName,
			RPCURL: rpcURL,
		}, nil
	}

	if isRPCURL(networkName) {
		return &config.Network{
			Name:   "custom",
			RPCURL: networkName,
		}, nil
	}

	// Networks missing from foundry.toml can still come from <NAME>_RPC_URL
	if rpcURL := os.Getenv(GenerateEnvVarName(networkName)); rpcURL != "" {
		return &config.Network{
			Name:   networkName,
			RPCURL: rpcURL,
		}, nil
	}

	switch networkName {
	case "localhost", "anvil", "hardhat":
		return &config.Network{
			Name:    networkName,
			RPCURL:  defaultLocalRPC,
			ChainID: 31337,
		}, nil
	}

	return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints]", networkName)
}

// FetchChainID asks the endpoint which chain it serves
func (r *NetworkResolver) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

func isRPCURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return strings.HasSuffix(s, ".ipc")
}
