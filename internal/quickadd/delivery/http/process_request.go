package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the single-line parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStartBatchReq binds the batch start request body.
func (h *handler) processStartBatchReq(c *gin.Context) (startBatchReq, error) {
	var req startBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateDraftReq binds the draft edit body and path parameters.
func (h *handler) processUpdateDraftReq(c *gin.Context) (updateDraftReq, error) {
	var req updateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.sessionID = c.Param("id")
	req.draftID = c.Param("draftID")
	return req, nil
}
