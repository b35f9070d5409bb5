package blockchain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_SimulatedBackend(t *testing.T) {
	chain := testutil.NewSimChain(t, true)
	client := NewClientFromBackend(chain.Client, testutil.SimulatedChainID, discardLogger())
	ctx := context.Background()

	chainID, err := client.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(testutil.SimulatedChainID), chainID.Int64())

	balance, err := client.BalanceAt(ctx, chain.Address)
	require.NoError(t, err)
	assert.Positive(t, balance.Sign())

	empty, err := client.BalanceAt(ctx, common.HexToAddress("0x1234"))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Cmp(big.NewInt(0)))

	code, err := client.CodeAt(ctx, common.HexToAddress("0xDEAD000000000000000000000000000000000000"))
	require.NoError(t, err)
	assert.Empty(t, code)

	_, err = client.BlockNumber(ctx)
	require.NoError(t, err)
}

func TestClient_ChainIDMismatch(t *testing.T) {
	chain := testutil.NewSimChain(t, true)
	client := NewClientFromBackend(chain.Client, 31337, discardLogger())

	_, err := client.BalanceAt(context.Background(), chain.Address)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
	assert.Contains(t, err.Error(), "expected 31337, endpoint reports 1337")
}

func TestClient_AcceptsAnyChainWhenUnset(t *testing.T) {
	chain := testutil.NewSimChain(t, true)
	client := NewClientFromBackend(chain.Client, 0, discardLogger())

	_, err := client.ChainID(context.Background())
	assert.NoError(t, err)
}

func TestClient_NoNetwork(t *testing.T) {
	client := NewClient(&config.RuntimeConfig{}, discardLogger())

	_, err := client.ChainID(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoNetwork)
	assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
}

func TestClient_UnreachableEndpoint(t *testing.T) {
	client := NewClient(&config.RuntimeConfig{
		Network: &config.Network{Name: "down", RPCURL: "http://127.0.0.1:1"},
	}, discardLogger())
	defer client.Close()

	_, err := client.BalanceAt(context.Background(), common.Address{})
	assert.Error(t, err)
}
