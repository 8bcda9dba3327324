package quickadd

import "errors"

// Domain-specific errors for quick entry.
var (
	ErrEmptyInput         = errors.New("input text is empty")
	ErrMissingTitle       = errors.New("no task title found")
	ErrUnresolvedProject  = errors.New("project reference could not be resolved")
	ErrSessionNotFound    = errors.New("batch session not found")
	ErrDraftNotFound      = errors.New("draft not found in session")
	ErrNothingToSubmit    = errors.New("no submittable drafts in session")
	ErrSubmitInProgress   = errors.New("session submit already in progress")
)
