package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	qa := rg.Group("/quickadd")
	{
		qa.POST("/parse", h.Parse)
		qa.POST("/tasks", h.CreateTask)

		qa.POST("/batch", h.StartBatch)
		qa.GET("/batch/:id", h.GetBatch)
		qa.PUT("/batch/:id/drafts/:draftID", h.UpdateDraft)
		qa.DELETE("/batch/:id/drafts/:draftID", h.DeleteDraft)
		qa.POST("/batch/:id/submit", h.SubmitBatch)
	}
}
