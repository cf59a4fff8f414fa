package errors

import "fmt"

// Common error messages for the lcui-release CLI.
// These templates ensure consistent, actionable error messages.

// MissingChangelog creates an error for a changelog source that does not exist.
func MissingChangelog(path string, err error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("changelog not found: %s", path),
		Remediation: []string{
			"Check that the changelog is committed and the job runs from the repository root",
			"Or point notes.sources at the right files in .lcui-release.yml",
		},
		Err: err,
	}
}

// UnterminatedSection creates an error for a changelog whose latest section
// has no version heading after it while strict mode is on.
func UnterminatedSection(err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  err.Error(),
		Remediation: []string{
			"Add the previous version heading below the latest entry",
			"Or disable strict mode: notes.strict: false",
		},
		Err: err,
	}
}

// MissingEnvFileVar creates an error when the CI runtime did not provide the
// environment file variable.
func MissingEnvFileVar(name string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("environment variable %s is not set", name),
		fmt.Sprintf("Run inside a CI job that exports %s", name),
		fmt.Sprintf("Or set it manually: %s=$(mktemp) lcui-release resolve-version", name),
	)
}

// EnvFileUnwritable creates an error when appending to the environment file fails.
func EnvFileUnwritable(path string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("cannot append to environment file %s: %v", path, err),
		Remediation: []string{
			"The file is created by the CI runtime; check the variable points at it",
		},
		Err: err,
	}
}

// NotesOutOfDate creates an error for `notes --check` when the output differs.
func NotesOutOfDate(path string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("%s is out of date", path),
		Remediation: []string{
			"Regenerate it: lcui-release notes",
		},
		Err: err,
	}
}

// InvalidConfig creates an error for a configuration that failed to load.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "loading configuration",
		"Check .lcui-release.yml (or the file passed with --config)",
		"Print the template with: lcui-release config init --stdout",
	)
}
