package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/project"
	repo "taskflow/internal/project/repository"
)

// Create creates a new Project after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return project.CreateProjectOutput{}, project.ErrEmptyName
	}

	existing, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneProject: %v", err)
		return project.CreateProjectOutput{}, err
	}
	if existing.ID != "" {
		return project.CreateProjectOutput{}, project.ErrDuplicateName
	}

	created, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		ID:    uuid.NewString(),
		Name:  name,
		Color: input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.CreateProjectOutput{}, err
	}

	return project.CreateProjectOutput{Project: created}, nil
}

// List returns all projects in resolution order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (project.ListProjectsOutput, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListProjectsOutput{}, err
	}
	return project.ListProjectsOutput{Projects: projects}, nil
}

// Detail returns a single project by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.DetailProjectOutput, error) {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneProject: %v", err)
		return project.DetailProjectOutput{}, err
	}
	if p.ID == "" {
		return project.DetailProjectOutput{}, project.ErrProjectNotFound
	}
	return project.DetailProjectOutput{Project: p}, nil
}

// Delete removes a project and, via the schema, its tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	p, err := uc.repo.GetOneProject(ctx, repo.GetOneProjectOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneProject: %v", err)
		return err
	}
	if p.ID == "" {
		return project.ErrProjectNotFound
	}

	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProject: %v", err)
		return err
	}
	return nil
}
