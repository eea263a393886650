package cli

import (
	"errors"

	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/services/identity"
)

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: store failures, network
	// errors, or anything without a more specific category.
	ExitError = 1

	// ExitUsage indicates incorrect command usage such as missing or
	// malformed flags.
	ExitUsage = 2

	// ExitNotFound indicates the referenced task or user doesn't exist.
	ExitNotFound = 3

	// ExitValidation indicates user input failed validation rules.
	ExitValidation = 5
)

// ExitCodeFor maps an error returned by a command to its exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, board.ErrTaskNotFound), errors.Is(err, identity.ErrUserNotFound):
		return ExitNotFound
	case isValidation(err):
		return ExitValidation
	default:
		return ExitError
	}
}

func isValidation(err error) bool {
	if _, ok := identity.AsValidation(err); ok {
		return true
	}
	return errors.Is(err, board.ErrEmptyTitle) ||
		errors.Is(err, board.ErrInvalidColumn) ||
		errors.Is(err, board.ErrEmptyUserID) ||
		errors.Is(err, board.ErrNoAssignees)
}
