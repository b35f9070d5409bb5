package config

import (
	"strings"
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Namespace string   // Selects the [namespace.*] role mapping in catapult.toml
	Network   *Network // nil if neither --network nor --rpc-url was given

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Deployment settings
	Deployer     *AccountConfig // nil if no deployer role resolved
	GasLimit     uint64         // 0 means estimate
	ArtifactDirs []string       // relative to ProjectRoot unless absolute

	// Resolved configurations
	FoundryConfig  *FoundryConfig
	CatapultConfig *CatapultFileConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"` // expected chain ID, 0 accepts whatever the endpoint reports
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// IsLocal reports whether the network points at a development node.
func (n *Network) IsLocal() bool {
	if n == nil {
		return false
	}
	switch n.Name {
	case "localhost", "anvil", "hardhat", "local":
		return true
	}
	switch n.ChainID {
	case 31337, 1337:
		return true
	}
	rpc := strings.ToLower(n.RPCURL)
	for _, host := range []string{"://localhost", "://127.0.0.1", "://0.0.0.0"} {
		if strings.Contains(rpc, host) {
			return true
		}
	}
	return false
}

// explorers holds the public block explorer of well-known chains
var explorers = map[uint64]string{
	1:        "https://etherscan.io",
	11155111: "https://sepolia.etherscan.io",
	17000:    "https://holesky.etherscan.io",
	10:       "https://optimistic.etherscan.io",
	137:      "https://polygonscan.com",
	8453:     "https://basescan.org",
	42161:    "https://arbiscan.io",
	43114:    "https://snowtrace.io",
	56:       "https://bscscan.com",
	42220:    "https://celoscan.io",
}

// ExplorerForChain returns the browse URL of the chain's block explorer, or
// "" when the chain is not known.
func ExplorerForChain(chainID uint64) string {
	return explorers[chainID]
}
