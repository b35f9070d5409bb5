package senders

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/testutil"
)

type fixedChain struct {
	id  int64
	err error
}

func (c fixedChain) ChainID(context.Context) (*big.Int, error) {
	if c.err != nil {
		return nil, c.err
	}
	return big.NewInt(c.id), nil
}

var anvilAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func signerFor(account *config.AccountConfig, chain ChainIDSource) *Signer {
	return NewSigner(&config.RuntimeConfig{Deployer: account}, chain)
}

func TestSigner_ActiveAccount(t *testing.T) {
	tests := []struct {
		name    string
		account *config.AccountConfig
		want    common.Address
		errIs   error
		errText string
	}{
		{
			name:    "private key with 0x prefix",
			account: &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: "0x" + testutil.AnvilKey},
			want:    anvilAddress,
		},
		{
			name:    "private key without prefix and matching address",
			account: &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: testutil.AnvilKey, Address: anvilAddress.Hex()},
			want:    anvilAddress,
		},
		{
			name:  "no account",
			errIs: domain.ErrNoSigner,
		},
		{
			name:    "ledger is not supported",
			account: &config.AccountConfig{Type: config.AccountType("ledger")},
			errIs:   domain.ErrUnsupportedAccountType,
		},
		{
			name:    "missing key",
			account: &config.AccountConfig{Type: config.AccountTypePrivateKey},
			errText: "private key is required",
		},
		{
			name:    "malformed key",
			account: &config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: "0xnothex"},
			errText: "invalid private key format",
		},
		{
			name: "address mismatch",
			account: &config.AccountConfig{
				Type:       config.AccountTypePrivateKey,
				PrivateKey: testutil.AnvilKey,
				Address:    "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			},
			errText: "but account address is configured as",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := signerFor(tt.account, fixedChain{id: 31337}).ActiveAccount(context.Background())
			if tt.errIs == nil && tt.errText == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, account.Address)
				assert.Nil(t, account.Balance)
				return
			}

			require.Error(t, err)
			assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
			assert.NotContains(t, err.Error(), testutil.AnvilKey)
		})
	}
}

func TestSigner_ChainUnreachable(t *testing.T) {
	down := errors.New("connection refused")
	s := signerFor(&config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: testutil.AnvilKey}, fixedChain{err: down})

	_, err := s.ActiveAccount(context.Background())
	assert.ErrorIs(t, err, down)
	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
}

func TestSigner_TransactOpts(t *testing.T) {
	s := signerFor(&config.AccountConfig{Type: config.AccountTypePrivateKey, PrivateKey: testutil.AnvilKey}, fixedChain{id: 31337})
	ctx := context.Background()

	opts, err := s.TransactOpts(ctx)
	require.NoError(t, err)
	assert.Equal(t, anvilAddress, opts.From)
	assert.Equal(t, ctx, opts.Context)
	assert.NotNil(t, opts.Signer)
}
