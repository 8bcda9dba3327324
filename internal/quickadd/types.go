package quickadd

import (
	"time"

	"taskflow/internal/task"
	"taskflow/pkg/quickparse"
)

// SessionStatus tracks a batch session through its lifecycle:
// parsed → submitting → completed. A partially failed submit drops the
// session back to parsed so the user can retry.
type SessionStatus string

const (
	SessionParsed     SessionStatus = "parsed"
	SessionSubmitting SessionStatus = "submitting"
	SessionCompleted  SessionStatus = "completed"
)

// BatchDraft is one parsed line held in a batch session. After parsing
// it is independently mutable until submitted or deleted.
type BatchDraft struct {
	ID    string
	Line  string // original input line, for display
	Draft quickparse.Draft
}

// BatchSession is the in-memory batch state. It lives only in the
// session store; eviction or expiry discards all unsaved drafts.
type BatchSession struct {
	ID      string
	UserID  string
	Status  SessionStatus
	Drafts  []BatchDraft
	// SubmittedCount is the optimistic progress counter: zeroed before
	// a submit, set to the server-confirmed success count after.
	SubmittedCount int
	CreatedAt      time.Time
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text             string
	DefaultProjectID string
}

type CreateFromLineInput struct {
	Text             string
	DefaultProjectID string
}

type StartBatchInput struct {
	RawText          string
	DefaultProjectID string
}

// UpdateDraftInput edits one draft in place. Nil pointers leave the
// field untouched; edits never re-run the text parser.
type UpdateDraftInput struct {
	SessionID string
	DraftID   string

	Title        *string
	DueDate      *time.Time
	ClearDueDate bool
	DueTime      *string
	Priority     *string
	ProjectID    *string
	IsImportant  *bool
}

type DeleteDraftInput struct {
	SessionID string
	DraftID   string
}

type SubmitBatchInput struct {
	SessionID string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Draft quickparse.Draft
}

type CreateFromLineOutput struct {
	Task task.Task
}

type StartBatchOutput struct {
	Session BatchSession
}

type UpdateDraftOutput struct {
	Draft BatchDraft
}

// SubmitFailure reports one draft the bulk create rejected.
type SubmitFailure struct {
	DraftID string
	Reason  string
}

type SubmitBatchOutput struct {
	CreatedIDs     []string
	Failed         []SubmitFailure
	Status         SessionStatus
	SubmittedCount int
}
