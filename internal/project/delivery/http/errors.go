package http

import (
	"taskflow/internal/project"
	pkgErrors "taskflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case project.ErrProjectNotFound:
		return pkgErrors.NewHTTPError(404, "project not found")
	case project.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "project name already exists")
	case project.ErrEmptyName:
		return pkgErrors.NewHTTPError(400, "project name is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
