package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/model"
	projectRepo "taskflow/internal/project/repository"
	"taskflow/internal/quickadd"
	"taskflow/internal/task"
	"taskflow/pkg/quickparse"
)

// ParseLine parses a single quick-add line into a draft preview.
func (uc *implUseCase) ParseLine(ctx context.Context, sc model.Scope, input quickadd.ParseInput) (quickadd.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return quickadd.ParseOutput{}, quickadd.ErrEmptyInput
	}

	projects, err := uc.knownProjects(ctx)
	if err != nil {
		return quickadd.ParseOutput{}, err
	}

	draft := uc.single.Parse(input.Text, time.Now(), projects)
	uc.applyDefaultProject(ctx, &draft, input.DefaultProjectID)
	return quickadd.ParseOutput{Draft: draft}, nil
}

// CreateFromLine parses a single line and creates the task directly.
// The hard requirements block here; the call never reaches the task
// domain for a non-submittable draft.
func (uc *implUseCase) CreateFromLine(ctx context.Context, sc model.Scope, input quickadd.CreateFromLineInput) (quickadd.CreateFromLineOutput, error) {
	parsed, err := uc.ParseLine(ctx, sc, quickadd.ParseInput(input))
	if err != nil {
		return quickadd.CreateFromLineOutput{}, err
	}

	draft := parsed.Draft
	if draft.Title == "" {
		return quickadd.CreateFromLineOutput{}, quickadd.ErrMissingTitle
	}
	if draft.ProjectID == "" {
		return quickadd.CreateFromLineOutput{}, quickadd.ErrUnresolvedProject
	}

	out, err := uc.tasks.Create(ctx, sc, draftToCreateInput(draft))
	if err != nil {
		uc.l.Errorf(ctx, "CreateFromLine: tasks.Create: %v", err)
		return quickadd.CreateFromLineOutput{}, err
	}

	uc.l.Infof(ctx, "CreateFromLine: created task %s for user=%s", out.Task.ID, sc.UserID)
	return quickadd.CreateFromLineOutput{Task: out.Task}, nil
}

// knownProjects fetches the resolution list. Order comes from the
// repository and is stable; resolution ties break on it.
func (uc *implUseCase) knownProjects(ctx context.Context) ([]quickparse.Project, error) {
	list, err := uc.projects.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "knownProjects: %v", err)
		return nil, err
	}

	out := make([]quickparse.Project, len(list))
	for i, p := range list {
		out[i] = quickparse.Project{ID: p.ID, Name: p.Name}
	}
	return out, nil
}

// applyDefaultProject backfills the caller-context default whenever the
// draft's own @project resolution failed (missing or unmatched token),
// then recomputes the warning.
func (uc *implUseCase) applyDefaultProject(ctx context.Context, d *quickparse.Draft, defaultID string) {
	if d.ProjectID != "" || defaultID == "" {
		return
	}

	d.ProjectID = defaultID
	if d.ProjectName == "" {
		if p, err := uc.projects.GetOneProject(ctx, projectByID(defaultID)); err == nil && p.ID != "" {
			d.ProjectName = p.Name
		}
	}
	recomputeWarning(d)
}

// recomputeWarning derives the warning from the two hard requirements
// only. Used after default-project backfill and after in-place edits.
func recomputeWarning(d *quickparse.Draft) {
	switch {
	case d.Title == "":
		d.Warning = quickparse.WarningNoTitle
	case d.ProjectID == "" && d.ProjectName != "":
		d.Warning = fmt.Sprintf("No project matching %q", d.ProjectName)
	case d.ProjectID == "":
		d.Warning = "No project selected"
	default:
		d.Warning = ""
	}
}

func projectByID(id string) projectRepo.GetOneProjectOptions {
	return projectRepo.GetOneProjectOptions{ID: id}
}

// draftToCreateInput shapes a submittable draft into the task-creation
// payload.
func draftToCreateInput(d quickparse.Draft) task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       d.Title,
		ProjectID:   d.ProjectID,
		Priority:    string(d.Priority),
		DueDate:     d.DueDate,
		DueTime:     d.DueTime,
		IsImportant: d.IsImportant,
		Tags:        d.Tags,
	}
}
