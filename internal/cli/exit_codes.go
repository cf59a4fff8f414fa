package cli

import clierrors "github.com/lc-soft/lcui-release/internal/errors"

// Exit codes for the lcui-release CLI
// CI steps only distinguish zero from non-zero; the specific codes help
// when reading job logs.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure, including out-of-date notes
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a missing changelog, env file or config
	ExitMissingPrerequisite = 4
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Configuration, clierrors.Prerequisite:
			return ExitMissingPrerequisite
		}
	}

	return ExitFailure
}
