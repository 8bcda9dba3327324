package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrMissingTitle    = errors.New("task title is empty")
	ErrMissingProject  = errors.New("task has no project")
	ErrProjectNotFound = errors.New("referenced project does not exist")
	ErrInvalidPriority = errors.New("invalid priority value")
	ErrEmptyBulk       = errors.New("bulk request has no items")
)
