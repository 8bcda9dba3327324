package http

import (
	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrMissingTitle, task.ErrMissingProject, task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, err.Error())
	case task.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(404, "referenced project does not exist")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
