package usecase

import "github.com/trebuchet-org/catapult/internal/domain"

// connectivityError wraps a chain failure. Errors that already carry a kind
// keep it and only gain the phase prefix.
func connectivityError(phase domain.Phase, err error) error {
	if domain.KindOf(err) != domain.KindUnknown {
		if phase == "" {
			return err
		}
		return &phaseError{phase: phase, err: err}
	}
	return &domain.ConnectivityError{Phase: phase, Err: err}
}

// phaseError prefixes an already typed error with the phase it occurred in
type phaseError struct {
	phase domain.Phase
	err   error
}

func (e *phaseError) Error() string { return string(e.phase) + ": " + e.err.Error() }

func (e *phaseError) Unwrap() error { return e.err }
