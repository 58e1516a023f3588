// Package errors defines the error-handling conventions for the skillkit
// CLI: sentinel errors for common failures, an ExitError carrying the
// process exit code, and the exit code constants themselves.
//
// Errors in skillkit are terminal. Commands never retry; the first failure
// is wrapped, reported on stderr, and mapped to an exit code in main.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned to the operating system.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (bad flag, invalid skill,
	// missing token, no resolvable pull request).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, API failure).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested skill or resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingToken indicates no GitHub token is configured.
	ErrMissingToken = errors.New("no GitHub token configured")

	// ErrNoPullRequest indicates no pull request could be resolved for the
	// current branch.
	ErrNoPullRequest = errors.New("no pull request found")

	// ErrInvalidToolSyntax indicates a malformed allowed-tools entry.
	ErrInvalidToolSyntax = errors.New("invalid tool syntax")
)

// ExitError wraps an error with an exit code and an optional suggestion for
// the user. It supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint printed after the error.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError creates an ExitError with ExitUser code and the standard
// diagnostic suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: "Run: skillkit doctor"}
}

// Error returns the message of the underlying error, or a generic message
// when there is none.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error so errors.Is and errors.As can walk
// the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeFor extracts the exit code from an error chain. A nil error maps to
// ExitSuccess; an error without an ExitError in its chain maps to ExitUser.
func CodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
