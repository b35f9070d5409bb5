package senders

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// ChainIDSource reports the chain transactions are signed for
type ChainIDSource interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// Signer resolves the deployer role to a local private key
type Signer struct {
	account *config.AccountConfig
	chain   ChainIDSource

	once sync.Once
	key  *ecdsa.PrivateKey
	err  error
}

// NewSigner creates a signer for the configured deployer account
func NewSigner(cfg *config.RuntimeConfig, chain ChainIDSource) *Signer {
	return &Signer{
		account: cfg.Deployer,
		chain:   chain,
	}
}

// ActiveAccount returns the deployer address after confirming the chain is
// reachable. Configuration problems come back as ConfigurationError.
func (s *Signer) ActiveAccount(ctx context.Context) (*domain.SigningAccount, error) {
	key, err := s.signingKey()
	if err != nil {
		return nil, err
	}

	if _, err := s.chain.ChainID(ctx); err != nil {
		return nil, err
	}

	return &domain.SigningAccount{Address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// TransactOpts returns transaction options bound to ctx and signed for the
// connected chain
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	key, err := s.signingKey()
	if err != nil {
		return nil, err
	}

	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (s *Signer) signingKey() (*ecdsa.PrivateKey, error) {
	s.once.Do(func() {
		s.key, s.err = parseAccount(s.account)
	})
	return s.key, s.err
}

// parseAccount validates the deployer account and loads its key
func parseAccount(account *config.AccountConfig) (*ecdsa.PrivateKey, error) {
	if account == nil {
		return nil, &domain.ConfigurationError{
			Err: fmt.Errorf("%w: set CATAPULT_PRIVATE_KEY or map the %q role in catapult.toml", domain.ErrNoSigner, config.DeployerRole),
		}
	}

	switch account.Type {
	case config.AccountTypePrivateKey, "":
	default:
		return nil, &domain.ConfigurationError{Err: fmt.Errorf("%w: %s", domain.ErrUnsupportedAccountType, account.Type)}
	}

	if account.PrivateKey == "" {
		return nil, &domain.ConfigurationError{Err: fmt.Errorf("private key is required for private_key account")}
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(account.PrivateKey, "0x"))
	if err != nil {
		// The key material itself must not end up in the message
		return nil, &domain.ConfigurationError{Err: fmt.Errorf("invalid private key format")}
	}

	if account.Address != "" {
		if !common.IsHexAddress(account.Address) {
			return nil, &domain.ConfigurationError{Err: fmt.Errorf("invalid account address: %s", account.Address)}
		}
		derived := crypto.PubkeyToAddress(key.PublicKey)
		if configured := common.HexToAddress(account.Address); configured != derived {
			return nil, &domain.ConfigurationError{
				Err: fmt.Errorf("private key controls %s but account address is configured as %s", derived.Hex(), configured.Hex()),
			}
		}
	}

	return key, nil
}

// Ensure Signer implements the interface
var _ usecase.AccountResolver = (*Signer)(nil)
