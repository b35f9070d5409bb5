package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) ActiveAccount(ctx context.Context) (*domain.SigningAccount, error) {
	args := m.Called(ctx)
	account, _ := args.Get(0).(*domain.SigningAccount)
	return account, args.Error(1)
}

type mockChain struct{ mock.Mock }

func (m *mockChain) ChainID(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	id, _ := args.Get(0).(*big.Int)
	return id, args.Error(1)
}

func (m *mockChain) BlockNumber(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockChain) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	balance, _ := args.Get(0).(*big.Int)
	return balance, args.Error(1)
}

func (m *mockChain) CodeAt(ctx context.Context, contract common.Address) ([]byte, error) {
	args := m.Called(ctx, contract)
	code, _ := args.Get(0).([]byte)
	return code, args.Error(1)
}

type mockTemplates struct{ mock.Mock }

func (m *mockTemplates) GetTemplate(ctx context.Context, name string) (*domain.ContractTemplate, error) {
	args := m.Called(ctx, name)
	template, _ := args.Get(0).(*domain.ContractTemplate)
	return template, args.Error(1)
}

type mockSubmitter struct{ mock.Mock }

func (m *mockSubmitter) Submit(ctx context.Context, account *domain.SigningAccount, template *domain.ContractTemplate) (*domain.DeploymentResult, error) {
	args := m.Called(ctx, account, template)
	result, _ := args.Get(0).(*domain.DeploymentResult)
	return result, args.Error(1)
}

type mockAddressWriter struct{ mock.Mock }

func (m *mockAddressWriter) WriteAddress(ctx context.Context, path string, address common.Address) error {
	return m.Called(ctx, path, address).Error(0)
}

type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

func (m *mockPrompter) SelectTemplate(ctx context.Context, prompt string, options []string) (string, error) {
	args := m.Called(ctx, prompt, options)
	return args.String(0), args.Error(1)
}

type mockNetworkResolver struct{ mock.Mock }

func (m *mockNetworkResolver) GetNetworks(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *mockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	network, _ := args.Get(0).(*config.Network)
	return network, args.Error(1)
}

func (m *mockNetworkResolver) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// recordingSink keeps progress output for assertions
type recordingSink struct {
	stages []ExecutionStage
	infos  []string
}

func (s *recordingSink) OnProgress(_ context.Context, event ProgressEvent) {
	s.stages = append(s.stages, event.Stage)
}
func (s *recordingSink) Info(message string) { s.infos = append(s.infos, message) }
