package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/quickadd"
	"taskflow/pkg/quickparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text             string `json:"text"               binding:"required,min=1"`
	DefaultProjectID string `json:"default_project_id" binding:"omitempty"`
}

func (r parseReq) toInput() quickadd.ParseInput {
	return quickadd.ParseInput{
		Text:             r.Text,
		DefaultProjectID: r.DefaultProjectID,
	}
}

func (r parseReq) toCreateInput() quickadd.CreateFromLineInput {
	return quickadd.CreateFromLineInput{
		Text:             r.Text,
		DefaultProjectID: r.DefaultProjectID,
	}
}

type startBatchReq struct {
	Text             string `json:"text"               binding:"required,min=1"`
	DefaultProjectID string `json:"default_project_id" binding:"omitempty"`
}

func (r startBatchReq) toInput() quickadd.StartBatchInput {
	return quickadd.StartBatchInput{
		RawText:          r.Text,
		DefaultProjectID: r.DefaultProjectID,
	}
}

type updateDraftReq struct {
	sessionID string
	draftID   string

	Title        *string `json:"title"        binding:"omitempty,max=500"`
	DueDate      *string `json:"due_date"`    // "2006-01-02", empty string clears the date
	DueTime      *string `json:"due_time"`    // "HH:MM"
	Priority     *string `json:"priority"     binding:"omitempty,oneof=low medium high urgent"`
	ProjectID    *string `json:"project_id"`
	IsImportant  *bool   `json:"is_important"`
}

func (r updateDraftReq) toInput() (quickadd.UpdateDraftInput, error) {
	input := quickadd.UpdateDraftInput{
		SessionID:   r.sessionID,
		DraftID:     r.draftID,
		Title:       r.Title,
		DueTime:     r.DueTime,
		Priority:    r.Priority,
		ProjectID:   r.ProjectID,
		IsImportant: r.IsImportant,
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			input.ClearDueDate = true
		} else {
			d, err := time.ParseInLocation("2006-01-02", *r.DueDate, time.Local)
			if err != nil {
				return input, fmt.Errorf("invalid due_date %q: expected YYYY-MM-DD", *r.DueDate)
			}
			input.DueDate = &d
		}
	}
	return input, nil
}

func deleteDraftInput(c *gin.Context) quickadd.DeleteDraftInput {
	return quickadd.DeleteDraftInput{
		SessionID: c.Param("id"),
		DraftID:   c.Param("draftID"),
	}
}

func submitInput(c *gin.Context) quickadd.SubmitBatchInput {
	return quickadd.SubmitBatchInput{SessionID: c.Param("id")}
}

// --- Response DTOs ---

type draftFields struct {
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date"`
	DueTime     string     `json:"due_time,omitempty"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
	ProjectName string     `json:"project_name,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	IsImportant bool       `json:"is_important"`
	Warning     string     `json:"warning,omitempty"`
	Submittable bool       `json:"submittable"`
}

func newDraftFields(d quickparse.Draft) draftFields {
	return draftFields{
		Title:       d.Title,
		DueDate:     d.DueDate,
		DueTime:     d.DueTime,
		Priority:    string(d.Priority),
		Tags:        d.Tags,
		ProjectName: d.ProjectName,
		ProjectID:   d.ProjectID,
		IsImportant: d.IsImportant,
		Warning:     d.Warning,
		Submittable: d.Submittable(),
	}
}

type parseResp struct {
	Draft draftFields `json:"draft"`
}

func (h *handler) newParseResp(out quickadd.ParseOutput) parseResp {
	return parseResp{Draft: newDraftFields(out.Draft)}
}

type createdTaskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	ProjectID   string     `json:"project_id"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	DueTime     string     `json:"due_time,omitempty"`
	IsImportant bool       `json:"is_important"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
}

type createTaskResp struct {
	Task createdTaskResp `json:"task"`
}

func (h *handler) newCreateTaskResp(out quickadd.CreateFromLineOutput) createTaskResp {
	t := out.Task
	return createTaskResp{Task: createdTaskResp{
		ID:          t.ID,
		Title:       t.Title,
		ProjectID:   t.ProjectID,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		DueTime:     t.DueTime,
		IsImportant: t.IsImportant,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt,
	}}
}

type draftResp struct {
	ID   string `json:"id"`
	Line string `json:"line"`
	draftFields
}

func newDraftResp(d quickadd.BatchDraft) draftResp {
	return draftResp{
		ID:          d.ID,
		Line:        d.Line,
		draftFields: newDraftFields(d.Draft),
	}
}

type sessionResp struct {
	ID             string      `json:"id"`
	Status         string      `json:"status"`
	Drafts         []draftResp `json:"drafts"`
	SubmittedCount int         `json:"submitted_count"`
	CreatedAt      time.Time   `json:"created_at"`
}

func newSessionResp(sess quickadd.BatchSession) sessionResp {
	drafts := make([]draftResp, len(sess.Drafts))
	for i, d := range sess.Drafts {
		drafts[i] = newDraftResp(d)
	}
	return sessionResp{
		ID:             sess.ID,
		Status:         string(sess.Status),
		Drafts:         drafts,
		SubmittedCount: sess.SubmittedCount,
		CreatedAt:      sess.CreatedAt,
	}
}

type submitFailureResp struct {
	DraftID string `json:"draft_id"`
	Reason  string `json:"reason"`
}

type submitResp struct {
	CreatedIDs     []string            `json:"created_ids"`
	Failed         []submitFailureResp `json:"failed"`
	Status         string              `json:"status"`
	SubmittedCount int                 `json:"submitted_count"`
}

func newSubmitResp(out quickadd.SubmitBatchOutput) submitResp {
	failed := make([]submitFailureResp, len(out.Failed))
	for i, f := range out.Failed {
		failed[i] = submitFailureResp{DraftID: f.DraftID, Reason: f.Reason}
	}
	return submitResp{
		CreatedIDs:     out.CreatedIDs,
		Failed:         failed,
		Status:         string(out.Status),
		SubmittedCount: out.SubmittedCount,
	}
}
