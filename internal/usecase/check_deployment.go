package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/catapult/internal/domain"
)

// CheckDeploymentResult contains the code found at an address
type CheckDeploymentResult struct {
	Address  common.Address
	CodeSize int
}

// CheckDeployment verifies that an existing address holds contract code
type CheckDeployment struct {
	chain ChainReader
}

// NewCheckDeployment creates a new CheckDeployment use case
func NewCheckDeployment(chain ChainReader) *CheckDeployment {
	return &CheckDeployment{chain: chain}
}

// Run applies the post-deployment bytecode check to address.
func (uc *CheckDeployment) Run(ctx context.Context, address string) (*CheckDeploymentResult, error) {
	if !common.IsHexAddress(address) {
		return nil, &domain.ConfigurationError{Err: fmt.Errorf("invalid address: %q", address)}
	}
	addr := common.HexToAddress(address)

	code, err := uc.chain.CodeAt(ctx, addr)
	if err != nil {
		return nil, connectivityError(domain.PhaseVerify, err)
	}
	if len(code) == 0 {
		return nil, &domain.VerificationFailedError{Address: addr}
	}

	return &CheckDeploymentResult{Address: addr, CodeSize: len(code)}, nil
}
