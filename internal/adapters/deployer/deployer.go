package deployer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/catapult/internal/adapters/blockchain"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// TransactorSource provides signing options for the deployer account
type TransactorSource interface {
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// BackendSource provides the connected chain backend
type BackendSource interface {
	Backend(ctx context.Context) (blockchain.Backend, error)
}

// Deployer sends contract-creation transactions and waits for their receipts
type Deployer struct {
	chain    BackendSource
	signer   TransactorSource
	gasLimit uint64
	log      *slog.Logger
}

// NewDeployer creates a new deployer
func NewDeployer(cfg *config.RuntimeConfig, chain BackendSource, signer TransactorSource, log *slog.Logger) *Deployer {
	return &Deployer{
		chain:    chain,
		signer:   signer,
		gasLimit: cfg.GasLimit,
		log:      log,
	}
}

// Submit deploys template without constructor arguments and blocks until the
// transaction is mined. It makes exactly one attempt.
func (d *Deployer) Submit(ctx context.Context, account *domain.SigningAccount, template *domain.ContractTemplate) (*domain.DeploymentResult, error) {
	opts, err := d.signer.TransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	if opts.From != account.Address {
		return nil, fmt.Errorf("signer %s does not match resolved account %s", opts.From.Hex(), account.Address.Hex())
	}
	if d.gasLimit > 0 {
		opts.GasLimit = d.gasLimit
	}

	backend, err := d.chain.Backend(ctx)
	if err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, template.ABI, template.Bytecode, backend)
	if err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	d.log.Debug("transaction submitted, waiting for confirmation",
		slog.String("template", template.Name),
		slog.String("tx_hash", tx.Hash().Hex()),
		slog.Uint64("gas_limit", tx.Gas()),
	)

	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return nil, &domain.SubmissionError{
			Template: template.Name,
			TxHash:   tx.Hash(),
			Err:      fmt.Errorf("wait for receipt: %w", err),
		}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &domain.SubmissionError{
			Template: template.Name,
			TxHash:   tx.Hash(),
			Err:      fmt.Errorf("%w in block %d", domain.ErrTransactionReverted, receipt.BlockNumber.Uint64()),
		}
	}

	d.log.Debug("transaction confirmed",
		slog.Uint64("block_number", receipt.BlockNumber.Uint64()),
		slog.Uint64("gas_used", receipt.GasUsed),
	)

	return &domain.DeploymentResult{
		ContractAddress: address,
		TxHash:          tx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
	}, nil
}

// Ensure Deployer implements the interface
var _ usecase.ContractSubmitter = (*Deployer)(nil)
