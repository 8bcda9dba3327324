package quickadd

import (
	"context"

	"taskflow/internal/model"
)

// UseCase defines the business logic interface for quick entry.
type UseCase interface {
	// ParseLine parses a single quick-add line into a draft preview
	// without creating anything.
	ParseLine(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// CreateFromLine parses a single line and creates the task directly.
	// Fails when the draft misses a hard requirement.
	CreateFromLine(ctx context.Context, sc model.Scope, input CreateFromLineInput) (CreateFromLineOutput, error)

	// StartBatch parses a multi-line buffer into an editable session.
	StartBatch(ctx context.Context, sc model.Scope, input StartBatchInput) (StartBatchOutput, error)

	GetBatch(ctx context.Context, sc model.Scope, sessionID string) (BatchSession, error)
	UpdateDraft(ctx context.Context, sc model.Scope, input UpdateDraftInput) (UpdateDraftOutput, error)
	DeleteDraft(ctx context.Context, sc model.Scope, input DeleteDraftInput) (BatchSession, error)

	// SubmitBatch bulk-creates all submittable drafts in the session.
	SubmitBatch(ctx context.Context, sc model.Scope, input SubmitBatchInput) (SubmitBatchOutput, error)
}
