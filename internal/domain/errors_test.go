package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000abcde")

	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), KindUnknown},
		{"configuration", &ConfigurationError{Err: ErrNoSigner}, KindConfiguration},
		{"connectivity", &ConnectivityError{Phase: PhaseBalance, Err: errors.New("dial tcp")}, KindConnectivity},
		{"insufficient funds", &InsufficientFundsError{Account: addr}, KindInsufficientFunds},
		{"submission", &SubmissionError{Template: "Counter", Err: ErrTransactionReverted}, KindSubmission},
		{"verification", &VerificationFailedError{Address: addr}, KindVerificationFailed},
		{"wrapped submission", fmt.Errorf("deploy: %w", &SubmissionError{Template: "Counter", Err: ErrTemplateNotFound}), KindSubmission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorMessagesNamePhase(t *testing.T) {
	addr := common.HexToAddress("0xDEAD000000000000000000000000000000000000")

	t.Run("insufficient funds", func(t *testing.T) {
		err := &InsufficientFundsError{Account: addr}
		assert.Equal(t, "check balance: insufficient funds: account "+addr.Hex()+" has zero balance", err.Error())
	})

	t.Run("verification failed", func(t *testing.T) {
		err := &VerificationFailedError{Address: addr}
		assert.Equal(t, "verify deployment: "+addr.Hex()+": no code at address", err.Error())
		assert.ErrorIs(t, err, ErrNoCode)
	})

	t.Run("submission with tx hash", func(t *testing.T) {
		hash := common.HexToHash("0x01")
		err := &SubmissionError{Template: "Counter", TxHash: hash, Err: ErrTransactionReverted}
		assert.Contains(t, err.Error(), "submit contract: Counter (tx 0x0000000000000000000000000000000000000000000000000000000000000001)")
		assert.ErrorIs(t, err, ErrTransactionReverted)
	})

	t.Run("connectivity without phase", func(t *testing.T) {
		err := &ConnectivityError{Err: errors.New("connection refused")}
		assert.Equal(t, "connectivity: connection refused", err.Error())
	})
}

func TestTemplateErrors(t *testing.T) {
	t.Run("not found with suggestions", func(t *testing.T) {
		err := &TemplateNotFoundError{Name: "Countr", Suggestions: []string{"Counter"}}
		assert.ErrorIs(t, err, ErrTemplateNotFound)
		assert.Equal(t, "contract template not found: Countr (did you mean Counter?)", err.Error())
	})

	t.Run("not found without suggestions", func(t *testing.T) {
		err := &TemplateNotFoundError{Name: "Nope"}
		assert.Equal(t, "contract template not found: Nope", err.Error())
	})

	t.Run("ambiguous", func(t *testing.T) {
		err := &AmbiguousTemplateError{Name: "Token", Matches: []string{"src/A.sol:Token", "src/B.sol:Token"}}
		assert.ErrorIs(t, err, ErrAmbiguousTemplate)
		assert.Contains(t, err.Error(), "  - src/A.sol:Token\n  - src/B.sol:Token")
	})
}
