package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/quickadd"
	"taskflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc quickadd.UseCase
}

// New creates a new HTTP handler for quick entry.
func New(l log.Logger, uc quickadd.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

func scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}
