package usecase

import (
	"taskflow/internal/project/repository"
	pkgLog "taskflow/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new project UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
