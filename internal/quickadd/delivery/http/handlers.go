package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/pkg/response"
)

// Parse godoc
// @Summary     Parse a quick-add line
// @Description Parses one free-text line into a structured draft preview without creating anything.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Line to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/quickadd/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseLine(ctx, scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseLine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// CreateTask godoc
// @Summary     Quick-add a task
// @Description Parses one free-text line and creates the task directly. Fails when the line has no title or no resolvable project.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Line to parse and create"
// @Success     200 {object} createTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/quickadd/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateFromLine(ctx, scope(c), req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromLine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateTaskResp(output))
}

// StartBatch godoc
// @Summary     Start a batch session
// @Description Parses a multi-line buffer into an editable draft session. Blank lines are skipped.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body startBatchReq true "Multi-line buffer"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/quickadd/batch [POST]
func (h *handler) StartBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartBatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.StartBatch(ctx, scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StartBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// GetBatch godoc
// @Summary     Get a batch session
// @Tags        QuickAdd
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quickadd/batch/{id} [GET]
func (h *handler) GetBatch(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.GetBatch(ctx, scope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// UpdateDraft godoc
// @Summary     Edit a draft in place
// @Description Updates draft fields directly; the edit is not re-run through the text parser. The warning is recomputed from the title and project requirements.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Session ID"
// @Param       draftID path string         true "Draft ID"
// @Param       body    body updateDraftReq true "Fields to update"
// @Success     200 {object} draftResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quickadd/batch/{id}/drafts/{draftID} [PUT]
func (h *handler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateDraftReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateDraft(ctx, scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateDraft: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDraftResp(output.Draft))
}

// DeleteDraft godoc
// @Summary     Delete a draft from a session
// @Tags        QuickAdd
// @Produce     json
// @Param       id      path string true "Session ID"
// @Param       draftID path string true "Draft ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quickadd/batch/{id}/drafts/{draftID} [DELETE]
func (h *handler) DeleteDraft(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.DeleteDraft(ctx, scope(c), deleteDraftInput(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteDraft: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(sess))
}

// SubmitBatch godoc
// @Summary     Submit a batch session
// @Description Bulk-creates all submittable drafts. Non-submittable drafts are excluded and stay in the session; per-item failures are reported.
// @Tags        QuickAdd
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Nothing to submit"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quickadd/batch/{id}/submit [POST]
func (h *handler) SubmitBatch(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SubmitBatch(ctx, scope(c), submitInput(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSubmitResp(output))
}
