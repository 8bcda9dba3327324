package task

import (
	"context"

	"taskflow/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// CreateBulk creates every item independently: one failing item is
	// recorded in the output and does not abort the rest.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
}
