package http

import (
	"fmt"
	"time"

	"taskflow/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"      binding:"required,min=1,max=500"`
	ProjectID   string   `json:"project_id" binding:"required"`
	Priority    string   `json:"priority"   binding:"omitempty,oneof=low medium high urgent"`
	DueDate     string   `json:"due_date"   binding:"omitempty"` // "2006-01-02"
	DueTime     string   `json:"due_time"   binding:"omitempty"` // "HH:MM"
	IsImportant bool     `json:"is_important"`
	Tags        []string `json:"tags"`
}

func (r createReq) toInput() (task.CreateTaskInput, error) {
	input := task.CreateTaskInput{
		Title:       r.Title,
		ProjectID:   r.ProjectID,
		Priority:    r.Priority,
		DueTime:     r.DueTime,
		IsImportant: r.IsImportant,
		Tags:        r.Tags,
	}
	if r.DueDate != "" {
		d, err := time.ParseInLocation("2006-01-02", r.DueDate, time.Local)
		if err != nil {
			return input, fmt.Errorf("invalid due_date %q: expected YYYY-MM-DD", r.DueDate)
		}
		input.DueDate = &d
	}
	return input, nil
}

type listReq struct {
	ProjectID string `form:"project_id"`
	Status    string `form:"status"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		ProjectID: r.ProjectID,
		Status:    r.Status,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
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

func newTaskResp(t task.Task) taskResp {
	return taskResp{
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
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
