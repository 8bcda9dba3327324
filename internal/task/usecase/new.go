package usecase

import (
	projectRepo "taskflow/internal/project/repository"
	"taskflow/internal/task/repository"
	pkgLog "taskflow/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	projects projectRepo.Repository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, projects projectRepo.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		projects: projects,
	}
}
