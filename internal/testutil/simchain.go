// Package testutil provides an in-process EVM chain for adapter tests.
package testutil

import (
	"crypto/ecdsa"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// SimulatedChainID is the chain ID the simulated backend reports.
const SimulatedChainID = 1337

// AnvilKey is anvil's first default account key.
const AnvilKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	// CounterBytecode deploys a 10-byte runtime that returns 42.
	CounterBytecode = common.FromHex("0x600a600c600039600a6000f3602a60005260206000f3")

	// CounterRuntimeSize is the length of the code CounterBytecode leaves behind.
	CounterRuntimeSize = 10

	// GhostBytecode succeeds but leaves no code at the new address.
	GhostBytecode = common.FromHex("0x60006000f3")

	// RevertingBytecode reverts during construction.
	RevertingBytecode = common.FromHex("0x60006000fd")
)

// SimChain is a simulated chain that mines a block every few milliseconds
// so that bind.WaitMined returns.
type SimChain struct {
	Backend *simulated.Backend
	Client  simulated.Client
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// NewSimChain starts a simulated chain. When funded is false the key's
// account holds no ether.
func NewSimChain(t testing.TB, funded bool) *SimChain {
	t.Helper()

	key, err := crypto.HexToECDSA(AnvilKey)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)

	alloc := types.GenesisAlloc{}
	if funded {
		alloc[addr] = types.Account{Balance: new(big.Int).Mul(big.NewInt(10000), big.NewInt(params.Ether))}
	}

	backend := simulated.NewBackend(alloc)
	t.Cleanup(func() { _ = backend.Close() })

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				backend.Commit()
			}
		}
	}()
	t.Cleanup(func() {
		close(stop)
		wg.Wait()
	})

	return &SimChain{
		Backend: backend,
		Client:  backend.Client(),
		Key:     key,
		Address: addr,
	}
}
