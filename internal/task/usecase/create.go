package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/model"
	projectRepo "taskflow/internal/project/repository"
	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
)

// Create validates and persists a single task. Callers are expected to
// have already run the quick-entry submittability checks; this is the
// last line of defense before the row is written.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if err := uc.validate(ctx, &input); err != nil {
		return task.CreateTaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ID:          uuid.NewString(),
		Title:       input.Title,
		ProjectID:   input.ProjectID,
		Priority:    input.Priority,
		Status:      task.StatusTodo,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		IsImportant: input.IsImportant,
		Tags:        input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

// CreateBulk creates every item independently. A failing item lands in
// Failed with its caller-side ref and the loop continues.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if len(input.Items) == 0 {
		return task.CreateBulkOutput{}, task.ErrEmptyBulk
	}

	uc.l.Infof(ctx, "CreateBulk: user=%s items=%d", sc.UserID, len(input.Items))

	out := task.CreateBulkOutput{}
	for _, item := range input.Items {
		created, err := uc.Create(ctx, sc, item.CreateTaskInput)
		if err != nil {
			uc.l.Warnf(ctx, "CreateBulk: item %q failed: %v", item.Ref, err)
			out.Failed = append(out.Failed, task.BulkFailure{Ref: item.Ref, Reason: err.Error()})
			continue
		}
		out.Created = append(out.Created, task.BulkCreated{Ref: item.Ref, Task: created.Task})
	}

	uc.l.Infof(ctx, "CreateBulk: created=%d failed=%d", len(out.Created), len(out.Failed))
	return out, nil
}

// validate enforces the hard requirements and normalizes defaults.
func (uc *implUseCase) validate(ctx context.Context, input *task.CreateTaskInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return task.ErrMissingTitle
	}
	if input.ProjectID == "" {
		return task.ErrMissingProject
	}

	if input.Priority == "" {
		input.Priority = "medium"
	}
	if !task.ValidPriorities[input.Priority] {
		return task.ErrInvalidPriority
	}

	p, err := uc.projects.GetOneProject(ctx, projectRepo.GetOneProjectOptions{ID: input.ProjectID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.validate GetOneProject: %v", err)
		return err
	}
	if p.ID == "" {
		return task.ErrProjectNotFound
	}
	return nil
}
