package project

import (
	"context"

	"taskflow/internal/model"
)

// UseCase defines the business logic interface for the project domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateProjectInput) (CreateProjectOutput, error)
	List(ctx context.Context, sc model.Scope) (ListProjectsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailProjectOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
