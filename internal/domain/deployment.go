package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// SigningAccount is the identity that authorizes and pays for a deployment.
// Balance is nil until the balance phase has run.
type SigningAccount struct {
	Address common.Address
	Balance *big.Int
}

// HasFunds reports whether the account balance is strictly positive.
func (a *SigningAccount) HasFunds() bool {
	return a.Balance != nil && a.Balance.Sign() > 0
}

// ArtifactSource identifies the build tool that produced a template.
type ArtifactSource string

const (
	ArtifactSourceFoundry ArtifactSource = "foundry"
	ArtifactSourceHardhat ArtifactSource = "hardhat"
)

// ContractTemplate is a compiled contract ready to be instantiated.
type ContractTemplate struct {
	Name         string
	SourcePath   string
	ArtifactPath string
	Source       ArtifactSource
	ABI          abi.ABI
	Bytecode     []byte
}

// FullName returns the "path:Name" form used to disambiguate templates.
func (t *ContractTemplate) FullName() string {
	if t.SourcePath == "" {
		return t.Name
	}
	return t.SourcePath + ":" + t.Name
}

// DeploymentResult is the outcome of a confirmed contract-creation transaction.
// DeployedBytecode is only populated between submission and verification.
type DeploymentResult struct {
	ContractAddress  common.Address
	TxHash           common.Hash
	BlockNumber      uint64
	GasUsed          uint64
	DeployedBytecode []byte
}

// Verified reports whether code was found at the contract address.
func (r *DeploymentResult) Verified() bool {
	return len(r.DeployedBytecode) > 0
}
