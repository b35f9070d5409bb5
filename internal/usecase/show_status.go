package usecase

import (
	"context"

	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// ShowStatusResult reports chain connectivity and the deployer's readiness
type ShowStatusResult struct {
	Network     *config.Network
	ChainID     uint64
	BlockNumber uint64
	Account     *domain.SigningAccount // nil when AccountErr is set
	AccountErr  error
}

// Ready reports whether a deployment could be attempted right now.
func (r *ShowStatusResult) Ready() bool {
	return r.Account != nil && r.Account.HasFunds()
}

// ShowStatus checks the chain connection and the configured signer
type ShowStatus struct {
	config   *config.RuntimeConfig
	chain    ChainReader
	accounts AccountResolver
}

// NewShowStatus creates a new ShowStatus use case
func NewShowStatus(cfg *config.RuntimeConfig, chain ChainReader, accounts AccountResolver) *ShowStatus {
	return &ShowStatus{
		config:   cfg,
		chain:    chain,
		accounts: accounts,
	}
}

// Run queries the chain. Connection failures are fatal; signer problems are
// reported in the result so the connection status is still shown.
func (uc *ShowStatus) Run(ctx context.Context) (*ShowStatusResult, error) {
	result := &ShowStatusResult{Network: uc.config.Network}

	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, connectivityError("", err)
	}
	result.ChainID = chainID.Uint64()

	result.BlockNumber, err = uc.chain.BlockNumber(ctx)
	if err != nil {
		return nil, connectivityError("", err)
	}

	account, err := uc.accounts.ActiveAccount(ctx)
	if err != nil {
		result.AccountErr = err
		return result, nil
	}

	account.Balance, err = uc.chain.BalanceAt(ctx, account.Address)
	if err != nil {
		return nil, connectivityError(domain.PhaseBalance, err)
	}
	result.Account = account

	return result, nil
}
