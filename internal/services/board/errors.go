package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrInvalidColumn = errors.New("invalid column")
	ErrEmptyUserID   = errors.New("user ID cannot be empty")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoAssignees rejects completing a task nobody is assigned to.
	// This is user-facing validation, not a system failure.
	ErrNoAssignees = errors.New("task must have at least one assignee before completion")
)
