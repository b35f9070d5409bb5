package render

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

var contractAddr = common.HexToAddress("0xABC0000000000000000000000000000000000001")

func TestStateTitle(t *testing.T) {
	assert.Equal(t, "Balance Checked", stateTitle(domain.StateBalanceChecked))
	assert.Equal(t, "Start → Account Resolved → Failed",
		formatTrace([]domain.RunState{domain.StateStart, domain.StateAccountResolved, domain.StateFailed}))
}

func TestExplorerAddressURL(t *testing.T) {
	assert.Equal(t, "", explorerAddressURL("", "0x1"))
	assert.Equal(t, "https://sepolia.etherscan.io/address/0x1", explorerAddressURL("https://sepolia.etherscan.io/", "0x1"))
}

func TestDeployRenderer(t *testing.T) {
	t.Run("verified run", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.DeployContractResult{
			RunID:    "run-1",
			Template: "Counter",
			Network:  &config.Network{Name: "sepolia", ChainID: 11155111, ExplorerURL: config.ExplorerForChain(11155111)},
			Deployment: &domain.DeploymentResult{
				ContractAddress: contractAddr,
				TxHash:          common.HexToHash("0x01"),
				BlockNumber:     7,
				GasUsed:         53000,
			},
			CodeSize:    4,
			AddressFile: "deployed.txt",
			States: []domain.RunState{
				domain.StateStart, domain.StateAccountResolved, domain.StateBalanceChecked,
				domain.StateSubmitted, domain.StateVerified,
			},
		}

		require.NoError(t, NewDeployRenderer(&buf, false).Render(result))
		out := buf.String()
		assert.Contains(t, out, "Counter deployed and verified")
		assert.Contains(t, out, contractAddr.Hex())
		assert.Contains(t, out, "4 bytes")
		assert.Contains(t, out, "https://sepolia.etherscan.io/address/"+contractAddr.Hex())
		assert.Contains(t, out, "deployed.txt")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("failed run shows trace", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.DeployContractResult{
			RunID:  "run-2",
			States: []domain.RunState{domain.StateStart, domain.StateAccountResolved, domain.StateFailed},
		}
		require.NoError(t, NewDeployRenderer(&buf, false).Render(result))
		assert.Equal(t, "Run run-2: Start → Account Resolved → Failed\n", buf.String())
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeployRenderer(&buf, false).Render(nil))
		assert.Empty(t, buf.String())
	})
}

func TestCheckRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCheckRenderer(&buf, false).Render(&usecase.CheckDeploymentResult{Address: contractAddr, CodeSize: 10}))
	assert.Equal(t, "✅ "+contractAddr.Hex()+" has 10 bytes of code\n", buf.String())
}

func TestStatusRenderer(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ShowStatusResult{
			Network:     &config.Network{Name: "anvil"},
			ChainID:     31337,
			BlockNumber: 12,
			Account:     &domain.SigningAccount{Address: contractAddr, Balance: big.NewInt(1000)},
		}
		require.NoError(t, NewStatusRenderer(&buf, false).Render(result))
		out := buf.String()
		assert.Contains(t, out, "anvil")
		assert.Contains(t, out, "31337")
		assert.Contains(t, out, "0.000000000000001 ETH")
		assert.Contains(t, out, "yes")
	})

	t.Run("signer error", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ShowStatusResult{
			ChainID:    1,
			AccountErr: errors.New("no deployer account configured"),
		}
		require.NoError(t, NewStatusRenderer(&buf, false).Render(result))
		out := buf.String()
		assert.Contains(t, out, "custom")
		assert.Contains(t, out, "no deployer account configured")
		assert.Contains(t, out, "no")
	})
}

func TestNetworksRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, false).RenderNetworksList(&usecase.ListNetworksResult{}))
		assert.Equal(t, "No networks configured in foundry.toml [rpc_endpoints]\n", buf.String())
	})

	t.Run("mixed", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
			{Name: "anvil", ChainID: 31337},
			{Name: "mainnet", Error: errors.New("environment variable MAINNET_RPC_URL not set")},
			{Name: "sepolia"},
		}}
		require.NoError(t, NewNetworksRenderer(&buf, false).RenderNetworksList(result))
		out := buf.String()
		assert.Contains(t, out, "Chain ID: 31337")
		assert.Contains(t, out, "Error: environment variable MAINNET_RPC_URL not set")
		assert.Contains(t, out, "Chain ID: unknown")
	})
}
