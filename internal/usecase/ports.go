package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// AccountResolver provides the identity that signs deployments
type AccountResolver interface {
	// ActiveAccount returns the account bound to the deployer role. Its
	// Balance is left nil.
	ActiveAccount(ctx context.Context) (*domain.SigningAccount, error)
}

// ChainReader queries chain state over the process-wide connection
type ChainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	CodeAt(ctx context.Context, contract common.Address) ([]byte, error)
}

// TemplateRegistry looks up compiled contracts in the project's build output
type TemplateRegistry interface {
	GetTemplate(ctx context.Context, name string) (*domain.ContractTemplate, error)
}

// ContractSubmitter instantiates a template on chain and waits for the receipt
type ContractSubmitter interface {
	Submit(ctx context.Context, account *domain.SigningAccount, template *domain.ContractTemplate) (*domain.DeploymentResult, error)
}

// AddressWriter records a verified contract address for downstream tooling
type AddressWriter interface {
	WriteAddress(ctx context.Context, path string, address common.Address) error
}

// InteractivePrompter asks the operator for decisions during a run
type InteractivePrompter interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	SelectTemplate(ctx context.Context, prompt string, options []string) (string, error)
}

// NetworkResolver resolves network configurations
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
	FetchChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// Progress tracking interfaces

// ExecutionStage names a step reported to a ProgressSink
type ExecutionStage string

const (
	StageResolvingAccount ExecutionStage = "resolving_account"
	StageCheckingBalance  ExecutionStage = "checking_balance"
	StageSubmitting       ExecutionStage = "submitting"
	StageVerifying        ExecutionStage = "verifying"
	StageCompleted        ExecutionStage = "completed"
	StageFailed           ExecutionStage = "failed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    ExecutionStage
	Message  string
	Spinner  bool
	Metadata any
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
}
