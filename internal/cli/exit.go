package cli

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCode maps the error returned by a command to the process exit status.
// Any failure, whatever its kind, exits with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}
