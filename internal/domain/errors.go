package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrTemplateNotFound is returned when no compiled artifact matches a template name
	ErrTemplateNotFound = errors.New("contract template not found")

	// ErrAmbiguousTemplate is returned when a template name matches several artifacts
	ErrAmbiguousTemplate = errors.New("ambiguous contract template")

	// ErrUnlinkedBytecode is returned when a template still contains library placeholders
	ErrUnlinkedBytecode = errors.New("bytecode has unlinked library references")

	// ErrNoSigner is returned when no deployer account is configured
	ErrNoSigner = errors.New("no deployer account configured")

	// ErrUnsupportedAccountType is returned for account types that cannot sign locally
	ErrUnsupportedAccountType = errors.New("unsupported account type")

	// ErrNoNetwork is returned when neither a network name nor an RPC URL is configured
	ErrNoNetwork = errors.New("no network configured")

	// ErrChainIDMismatch is returned when the RPC endpoint serves a different chain than expected
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrTransactionReverted is returned when the creation transaction is mined with a failed status
	ErrTransactionReverted = errors.New("deployment transaction reverted")

	// ErrNoCode is returned when the chain reports empty bytecode at an address
	ErrNoCode = errors.New("no code at address")

	// ErrDeploymentCancelled is returned when the operator declines the confirmation prompt
	ErrDeploymentCancelled = errors.New("deployment cancelled")
)

// ErrorKind tags a deployment failure with its category.
type ErrorKind string

const (
	KindUnknown            ErrorKind = "unknown"
	KindConfiguration      ErrorKind = "configuration"
	KindConnectivity       ErrorKind = "connectivity"
	KindInsufficientFunds  ErrorKind = "insufficient_funds"
	KindSubmission         ErrorKind = "submission"
	KindVerificationFailed ErrorKind = "verification_failed"
)

// kinded is implemented by every typed deployment error.
type kinded interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first typed deployment error in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// ConfigurationError indicates the run could not start because local configuration is invalid.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

// ConnectivityError indicates the chain connection or a query against it failed.
type ConnectivityError struct {
	Phase Phase
	Err   error
}

func (e *ConnectivityError) Error() string {
	if e.Phase != "" {
		return fmt.Sprintf("%s: connectivity: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("connectivity: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

func (e *ConnectivityError) Kind() ErrorKind { return KindConnectivity }

// InsufficientFundsError indicates the signing account holds a zero balance.
type InsufficientFundsError struct {
	Account common.Address
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: insufficient funds: account %s has zero balance", PhaseBalance, e.Account.Hex())
}

func (e *InsufficientFundsError) Kind() ErrorKind { return KindInsufficientFunds }

// SubmissionError indicates the deployment transaction could not be built, was rejected,
// or did not confirm successfully.
type SubmissionError struct {
	Template string
	TxHash   common.Hash
	Err      error
}

func (e *SubmissionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", PhaseSubmit, e.Template)
	if e.TxHash != (common.Hash{}) {
		fmt.Fprintf(&b, " (tx %s)", e.TxHash.Hex())
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func (e *SubmissionError) Kind() ErrorKind { return KindSubmission }

// VerificationFailedError indicates the confirmed deployment left no code at the address.
type VerificationFailedError struct {
	Address common.Address
	TxHash  common.Hash
}

func (e *VerificationFailedError) Error() string {
	msg := fmt.Sprintf("%s: %s: %v", PhaseVerify, e.Address.Hex(), ErrNoCode)
	if e.TxHash != (common.Hash{}) {
		msg += fmt.Sprintf(" (tx %s)", e.TxHash.Hex())
	}
	return msg
}

func (e *VerificationFailedError) Unwrap() error { return ErrNoCode }

func (e *VerificationFailedError) Kind() ErrorKind { return KindVerificationFailed }

// AmbiguousTemplateError lists the artifacts that matched a template name.
type AmbiguousTemplateError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousTemplateError) Error() string {
	var suggestions []string
	for _, m := range e.Matches {
		suggestions = append(suggestions, "  - "+m)
	}
	return fmt.Sprintf("%v: %q matches %d artifacts, use path:Name to disambiguate:\n%s",
		ErrAmbiguousTemplate, e.Name, len(e.Matches), strings.Join(suggestions, "\n"))
}

func (e *AmbiguousTemplateError) Unwrap() error { return ErrAmbiguousTemplate }

// TemplateNotFoundError carries close matches for a missing template name.
type TemplateNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *TemplateNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %s", ErrTemplateNotFound, e.Name)
	}
	return fmt.Sprintf("%v: %s (did you mean %s?)", ErrTemplateNotFound, e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *TemplateNotFoundError) Unwrap() error { return ErrTemplateNotFound }
