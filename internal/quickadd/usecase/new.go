package usecase

import (
	"time"

	projectRepo "taskflow/internal/project/repository"
	"taskflow/internal/task"
	"taskflow/pkg/datemath"
	pkgLog "taskflow/pkg/log"
	"taskflow/pkg/quickparse"
)

type implUseCase struct {
	l        pkgLog.Logger
	single   *quickparse.Parser
	batch    *quickparse.Parser
	projects projectRepo.Repository
	tasks    task.UseCase
	store    *sessionStore
}

// New creates a new quick-entry UseCase. Both parser variants share the
// pipeline and differ only in marker configuration.
func New(
	l pkgLog.Logger,
	projects projectRepo.Repository,
	tasks task.UseCase,
	dm *datemath.Parser,
	sessionCapacity int,
	sessionTTL time.Duration,
) *implUseCase {
	return &implUseCase{
		l:        l,
		single:   quickparse.New(quickparse.SingleAdd(), dm),
		batch:    quickparse.New(quickparse.Batch(), dm),
		projects: projects,
		tasks:    tasks,
		store:    newSessionStore(sessionCapacity, sessionTTL),
	}
}
