package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// DeployContractParams contains parameters for a deployment run
type DeployContractParams struct {
	Template    string // contract name or path:Name
	AddressFile string // written after verification when set
	SkipConfirm bool
}

// DeployContractResult contains the outcome of a deployment run
type DeployContractResult struct {
	RunID       string
	Template    string
	Network     *config.Network
	Account     *domain.SigningAccount
	Deployment  *domain.DeploymentResult // nil until submission succeeds
	CodeSize    int
	AddressFile string
	States      []domain.RunState
}

// Success reports whether the run reached the verified state.
func (r *DeployContractResult) Success() bool {
	return len(r.States) > 0 && r.States[len(r.States)-1] == domain.StateVerified
}

// DeployContract runs a single verified contract deployment:
// resolve account, check balance, submit, verify.
type DeployContract struct {
	config    *config.RuntimeConfig
	accounts  AccountResolver
	chain     ChainReader
	templates TemplateRegistry
	submitter ContractSubmitter
	addresses AddressWriter
	prompter  InteractivePrompter
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	accounts AccountResolver,
	chain ChainReader,
	templates TemplateRegistry,
	submitter ContractSubmitter,
	addresses AddressWriter,
	prompter InteractivePrompter,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		accounts:  accounts,
		chain:     chain,
		templates: templates,
		submitter: submitter,
		addresses: addresses,
		prompter:  prompter,
		progress:  progress,
		log:       log,
	}
}

// Run executes one deployment attempt. Every failure is returned as a typed
// error and leaves the run in the failed state; nothing is retried.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	trace := domain.NewRunTrace()
	result := &DeployContractResult{
		RunID:    uuid.NewString(),
		Template: params.Template,
		Network:  uc.config.Network,
	}
	log := uc.log.With("run", result.RunID, "template", params.Template)

	fail := func(err error) (*DeployContractResult, error) {
		_ = trace.Advance(domain.StateFailed)
		result.States = trace.States
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageFailed, Message: err.Error()})
		log.Debug("deployment failed", "state", trace.States[len(trace.States)-2], "kind", domain.KindOf(err))
		return result, err
	}
	advance := func(to domain.RunState) {
		// Phases run strictly in order, so only the happy path calls this.
		if err := trace.Advance(to); err != nil {
			panic(err)
		}
		result.States = trace.States
	}

	// Phase 1: account resolution
	account, err := uc.resolveAccount(ctx)
	if err != nil {
		return fail(err)
	}
	result.Account = account
	advance(domain.StateAccountResolved)
	uc.progress.Info(fmt.Sprintf("Deploying from account: %s", account.Address.Hex()))

	// Phase 2: balance precondition
	if err := uc.checkBalance(ctx, account); err != nil {
		return fail(err)
	}
	advance(domain.StateBalanceChecked)

	// Phase 3: submission
	deployment, err := uc.submit(ctx, account, params)
	if err != nil {
		return fail(err)
	}
	result.Deployment = deployment
	advance(domain.StateSubmitted)
	log.Info("deployment confirmed", "address", deployment.ContractAddress.Hex(), "tx", deployment.TxHash.Hex())

	// Phase 4: postcondition verification
	codeSize, err := uc.verify(ctx, deployment)
	if err != nil {
		return fail(err)
	}
	result.CodeSize = codeSize
	advance(domain.StateVerified)
	result.Network = uc.resolvedNetwork(ctx, log)

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageCompleted,
		Message:  fmt.Sprintf("Contract deployed at %s", deployment.ContractAddress.Hex()),
		Metadata: result,
	})

	if params.AddressFile != "" {
		if err := uc.addresses.WriteAddress(ctx, params.AddressFile, deployment.ContractAddress); err != nil {
			return result, fmt.Errorf("contract verified at %s but the address file could not be written: %w",
				deployment.ContractAddress.Hex(), err)
		}
		result.AddressFile = params.AddressFile
	}

	return result, nil
}

func (uc *DeployContract) resolveAccount(ctx context.Context) (*domain.SigningAccount, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolvingAccount,
		Message: "Resolving deployer account...",
		Spinner: true,
	})

	account, err := uc.accounts.ActiveAccount(ctx)
	if err != nil {
		return nil, connectivityError(domain.PhaseAccount, err)
	}
	return account, nil
}

// checkBalance fails only on an exactly-zero balance. Whether the balance
// covers gas is left to the network.
func (uc *DeployContract) checkBalance(ctx context.Context, account *domain.SigningAccount) error {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageCheckingBalance,
		Message: "Checking balance...",
		Spinner: true,
	})

	balance, err := uc.chain.BalanceAt(ctx, account.Address)
	if err != nil {
		return connectivityError(domain.PhaseBalance, err)
	}
	account.Balance = balance
	uc.progress.Info(fmt.Sprintf("Account balance: %s ETH", domain.FormatEther(balance)))

	if !account.HasFunds() {
		return &domain.InsufficientFundsError{Account: account.Address}
	}
	return nil
}

func (uc *DeployContract) submit(ctx context.Context, account *domain.SigningAccount, params DeployContractParams) (*domain.DeploymentResult, error) {
	template, err := uc.resolveTemplate(ctx, params.Template)
	if err != nil {
		return nil, &domain.SubmissionError{Template: params.Template, Err: err}
	}

	if err := uc.confirm(ctx, account, template, params); err != nil {
		return nil, &domain.SubmissionError{Template: template.Name, Err: err}
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSubmitting,
		Message: fmt.Sprintf("Deploying %s...", template.Name),
		Spinner: true,
	})

	deployment, err := uc.submitter.Submit(ctx, account, template)
	if err != nil {
		var submissionErr *domain.SubmissionError
		if errors.As(err, &submissionErr) {
			return nil, err
		}
		return nil, &domain.SubmissionError{Template: template.Name, Err: err}
	}
	return deployment, nil
}

// resolveTemplate looks the template up, letting an interactive operator
// pick one when the name matches several artifacts.
func (uc *DeployContract) resolveTemplate(ctx context.Context, name string) (*domain.ContractTemplate, error) {
	template, err := uc.templates.GetTemplate(ctx, name)

	var ambiguous *domain.AmbiguousTemplateError
	if err == nil || uc.config.NonInteractive || !errors.As(err, &ambiguous) {
		return template, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Selecting contract"})
	choice, selectErr := uc.prompter.SelectTemplate(ctx, fmt.Sprintf("Multiple contracts named %s", name), ambiguous.Matches)
	if selectErr != nil {
		return nil, fmt.Errorf("%w: %v", err, selectErr)
	}
	return uc.templates.GetTemplate(ctx, choice)
}

// confirm prompts before spending funds on a non-local chain.
func (uc *DeployContract) confirm(ctx context.Context, account *domain.SigningAccount, template *domain.ContractTemplate, params DeployContractParams) error {
	if params.SkipConfirm || uc.config.NonInteractive || uc.config.Network.IsLocal() {
		return nil
	}

	network := "the configured network"
	if uc.config.Network != nil {
		network = uc.config.Network.Name
	}
	prompt := fmt.Sprintf("Deploy %s to %s from %s", template.Name, network, account.Address.Hex())

	// The spinner must not draw over the prompt.
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Awaiting confirmation"})

	ok, err := uc.prompter.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}
	if !ok {
		return domain.ErrDeploymentCancelled
	}
	return nil
}

// resolvedNetwork returns the run's network with the chain ID the endpoint
// reported and the explorer of that chain.
func (uc *DeployContract) resolvedNetwork(ctx context.Context, log *slog.Logger) *config.Network {
	network := config.Network{Name: "custom"}
	if uc.config.Network != nil {
		network = *uc.config.Network
	}

	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		log.Debug("chain ID unavailable, no explorer link", "error", err)
		return &network
	}
	network.ChainID = chainID.Uint64()
	network.ExplorerURL = config.ExplorerForChain(network.ChainID)
	return &network
}

// verify re-reads the code at exactly the submitted address. The bytecode is
// dropped once checked; only its length is kept.
func (uc *DeployContract) verify(ctx context.Context, deployment *domain.DeploymentResult) (int, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageVerifying,
		Message: "Verifying deployed bytecode...",
		Spinner: true,
	})

	code, err := uc.chain.CodeAt(ctx, deployment.ContractAddress)
	if err != nil {
		return 0, connectivityError(domain.PhaseVerify, err)
	}
	deployment.DeployedBytecode = code
	defer func() { deployment.DeployedBytecode = nil }()

	if !deployment.Verified() {
		return 0, &domain.VerificationFailedError{
			Address: deployment.ContractAddress,
			TxHash:  deployment.TxHash,
		}
	}
	return len(code), nil
}
