package repository

import (
	"context"

	"taskflow/internal/project"
)

// Repository defines all data access methods for the Project entity.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (project.Project, error)
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (project.Project, error)
	// ListProjects returns all projects ordered by name. Quick-entry
	// resolution ties break on list order, so the order is fixed here.
	ListProjects(ctx context.Context) ([]project.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
