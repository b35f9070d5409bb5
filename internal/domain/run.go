package domain

import "fmt"

// Phase names one step of a deployment run.
type Phase string

const (
	PhaseAccount Phase = "resolve account"
	PhaseBalance Phase = "check balance"
	PhaseSubmit  Phase = "submit contract"
	PhaseVerify  Phase = "verify deployment"
)

// RunState is a node in the deployment state machine.
type RunState string

const (
	StateStart           RunState = "start"
	StateAccountResolved RunState = "account_resolved"
	StateBalanceChecked  RunState = "balance_checked"
	StateSubmitted       RunState = "submitted"
	StateVerified        RunState = "verified"
	StateFailed          RunState = "failed"
)

// next holds the only forward transition out of each non-terminal state.
var next = map[RunState]RunState{
	StateStart:           StateAccountResolved,
	StateAccountResolved: StateBalanceChecked,
	StateBalanceChecked:  StateSubmitted,
	StateSubmitted:       StateVerified,
}

// Terminal reports whether no transition leaves s.
func (s RunState) Terminal() bool {
	return s == StateVerified || s == StateFailed
}

// CanTransition reports whether the run may move from s to to.
func (s RunState) CanTransition(to RunState) bool {
	if s.Terminal() {
		return false
	}
	if to == StateFailed {
		return true
	}
	return next[s] == to
}

// RunTrace records the states a run passed through, in order.
type RunTrace struct {
	States []RunState
}

// NewRunTrace starts a trace in StateStart.
func NewRunTrace() *RunTrace {
	return &RunTrace{States: []RunState{StateStart}}
}

// Current returns the latest state.
func (t *RunTrace) Current() RunState {
	return t.States[len(t.States)-1]
}

// Advance records a transition, rejecting anything the state machine does not allow.
func (t *RunTrace) Advance(to RunState) error {
	from := t.Current()
	if !from.CanTransition(to) {
		return fmt.Errorf("invalid run transition %s -> %s", from, to)
	}
	t.States = append(t.States, to)
	return nil
}
