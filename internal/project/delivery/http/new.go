package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/project"
	"taskflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// scope builds the request scope. Authentication is out of scope; the
// caller identity comes from a plain header when present.
func scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}
