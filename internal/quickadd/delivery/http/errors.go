package http

import (
	"taskflow/internal/project"
	"taskflow/internal/quickadd"
	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case quickadd.ErrEmptyInput, quickadd.ErrMissingTitle,
		quickadd.ErrUnresolvedProject, quickadd.ErrNothingToSubmit:
		return pkgErrors.NewHTTPError(400, err.Error())
	case quickadd.ErrSessionNotFound, quickadd.ErrDraftNotFound:
		return pkgErrors.NewHTTPError(404, err.Error())
	case quickadd.ErrSubmitInProgress:
		return pkgErrors.NewHTTPError(409, err.Error())
	case task.ErrMissingTitle, task.ErrMissingProject, task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, err.Error())
	case task.ErrProjectNotFound, project.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(404, "referenced project does not exist")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
