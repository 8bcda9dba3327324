package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/project"
	projectRepo "taskflow/internal/project/repository"
	"taskflow/internal/quickadd"
	"taskflow/internal/quickadd/usecase"
	"taskflow/internal/task"
	"taskflow/pkg/datemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockProjectRepo struct {
	projects []project.Project
	fail     bool
}

func (m *mockProjectRepo) CreateProject(ctx context.Context, opt projectRepo.CreateProjectOptions) (project.Project, error) {
	return project.Project{}, nil
}

func (m *mockProjectRepo) GetOneProject(ctx context.Context, opt projectRepo.GetOneProjectOptions) (project.Project, error) {
	if m.fail {
		return project.Project{}, errors.New("db error")
	}
	for _, p := range m.projects {
		if (opt.ID == "" || p.ID == opt.ID) && (opt.Name == "" || p.Name == opt.Name) {
			return p, nil
		}
	}
	return project.Project{}, nil
}

func (m *mockProjectRepo) ListProjects(ctx context.Context) ([]project.Project, error) {
	if m.fail {
		return nil, errors.New("db error")
	}
	return m.projects, nil
}

func (m *mockProjectRepo) DeleteProject(ctx context.Context, id string) error {
	return nil
}

// mockTaskUC records bulk calls and fails items whose title matches
// failTitles; failAll simulates a transport-level error.
type mockTaskUC struct {
	created    []task.CreateTaskInput
	failTitles map[string]bool
	failAll    bool
	bulkCalls  int
}

func (m *mockTaskUC) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.created = append(m.created, input)
	return task.CreateTaskOutput{Task: task.Task{ID: fmt.Sprintf("task-%d", len(m.created)), Title: input.Title, ProjectID: input.ProjectID}}, nil
}

func (m *mockTaskUC) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	m.bulkCalls++
	if m.failAll {
		return task.CreateBulkOutput{}, errors.New("bulk transport error")
	}

	var out task.CreateBulkOutput
	for _, item := range input.Items {
		if m.failTitles[item.Title] {
			out.Failed = append(out.Failed, task.BulkFailure{Ref: item.Ref, Reason: "rejected"})
			continue
		}
		m.created = append(m.created, item.CreateTaskInput)
		out.Created = append(out.Created, task.BulkCreated{
			Ref:  item.Ref,
			Task: task.Task{ID: fmt.Sprintf("task-%d", len(m.created)), Title: item.Title},
		})
	}
	return out, nil
}

func (m *mockTaskUC) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}

func newTestUC(t *testing.T, tasks *mockTaskUC) quickadd.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating date parser: %v", err)
	}
	repo := &mockProjectRepo{projects: []project.Project{
		{ID: "p-work", Name: "Work"},
		{ID: "p-home", Name: "Home"},
	}}
	return usecase.New(&mockLogger{}, repo, tasks, dm, 16, time.Minute)
}

var scope = model.Scope{UserID: "user-1"}

func TestStartBatchFiltersBlankLines(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, err := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{
		RawText: "buy milk @home\n\n   \nship release @work !urgent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess := out.Session
	if len(sess.Drafts) != 2 {
		t.Fatalf("drafts = %d, want 2 (blank lines skipped)", len(sess.Drafts))
	}
	if sess.Status != quickadd.SessionParsed {
		t.Errorf("status = %q, want parsed", sess.Status)
	}
	if sess.SubmittedCount != 0 {
		t.Errorf("submittedCount = %d, want 0 before submit", sess.SubmittedCount)
	}
	if sess.Drafts[0].Draft.Title != "buy milk" || sess.Drafts[0].Draft.ProjectID != "p-home" {
		t.Errorf("first draft = %+v", sess.Drafts[0].Draft)
	}
	if sess.Drafts[1].Draft.Priority != "urgent" {
		t.Errorf("second draft priority = %q, want urgent", sess.Drafts[1].Draft.Priority)
	}
}

func TestStartBatchEmptyInput(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	_, err := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: " \n\n  "})
	if !errors.Is(err, quickadd.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestStartBatchDefaultProject(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, err := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{
		RawText:          "buy milk\nreview PR @work",
		DefaultProjectID: "p-home",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := out.Session.Drafts[0].Draft
	if first.ProjectID != "p-home" || first.ProjectName != "Home" {
		t.Errorf("draft without reference should inherit default, got %q/%q", first.ProjectName, first.ProjectID)
	}
	second := out.Session.Drafts[1].Draft
	if second.ProjectID != "p-work" {
		t.Errorf("typed reference must win over default, got %q", second.ProjectID)
	}
}

func TestGetBatchOwnership(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, _ := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: "buy milk @home"})

	if _, err := uc.GetBatch(ctx, scope, out.Session.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := uc.GetBatch(ctx, model.Scope{UserID: "someone-else"}, out.Session.ID)
	if !errors.Is(err, quickadd.ErrSessionNotFound) {
		t.Fatalf("foreign lookup err = %v, want ErrSessionNotFound", err)
	}

	_, err = uc.GetBatch(ctx, scope, "no-such-session")
	if !errors.Is(err, quickadd.ErrSessionNotFound) {
		t.Fatalf("missing session err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateDraftRecomputesWarning(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, _ := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: "buy milk"})
	sess := out.Session
	draft := sess.Drafts[0]

	if draft.Draft.Submittable() {
		t.Fatalf("draft without project must not be submittable")
	}

	// Assigning a project clears the warning.
	pid := "p-home"
	updated, err := uc.UpdateDraft(ctx, scope, quickadd.UpdateDraftInput{
		SessionID: sess.ID,
		DraftID:   draft.ID,
		ProjectID: &pid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Draft.Draft.Warning != "" {
		t.Errorf("warning = %q, want cleared", updated.Draft.Draft.Warning)
	}
	if updated.Draft.Draft.ProjectName != "Home" {
		t.Errorf("projectName = %q, want Home", updated.Draft.Draft.ProjectName)
	}

	// Blanking the title brings the title warning back.
	empty := ""
	updated, err = uc.UpdateDraft(ctx, scope, quickadd.UpdateDraftInput{
		SessionID: sess.ID,
		DraftID:   draft.ID,
		Title:     &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Draft.Draft.Warning == "" {
		t.Error("expected warning after blanking title")
	}
	if updated.Draft.Draft.Submittable() {
		t.Error("draft without title must not be submittable")
	}
}

func TestUpdateDraftUnknownProject(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, _ := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: "buy milk"})

	pid := "no-such-project"
	_, err := uc.UpdateDraft(ctx, scope, quickadd.UpdateDraftInput{
		SessionID: out.Session.ID,
		DraftID:   out.Session.Drafts[0].ID,
		ProjectID: &pid,
	})
	if !errors.Is(err, project.ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestUpdateDraftClearDueDate(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, _ := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: "buy milk tomorrow @home"})
	draft := out.Session.Drafts[0]
	if draft.Draft.DueDate == nil {
		t.Fatalf("expected parsed due date")
	}

	updated, err := uc.UpdateDraft(ctx, scope, quickadd.UpdateDraftInput{
		SessionID:    out.Session.ID,
		DraftID:      draft.ID,
		ClearDueDate: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Draft.Draft.DueDate != nil {
		t.Errorf("dueDate = %v, want cleared", updated.Draft.Draft.DueDate)
	}
}

func TestDeleteDraft(t *testing.T) {
	uc := newTestUC(t, &mockTaskUC{})
	ctx := context.Background()

	out, _ := uc.StartBatch(ctx, scope, quickadd.StartBatchInput{RawText: "one @home\ntwo @work"})
	sess := out.Session

	got, err := uc.DeleteDraft(ctx, scope, quickadd.DeleteDraftInput{
		SessionID: sess.ID,
		DraftID:   sess.Drafts[0].ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Drafts) != 1 || got.Drafts[0].Draft.Title != "two" {
		t.Fatalf("drafts after delete = %+v", got.Drafts)
	}

	_, err = uc.DeleteDraft(ctx, scope, quickadd.DeleteDraftInput{
		SessionID: sess.ID,
		DraftID:   "no-such-draft",
	})
	if !errors.Is(err, quickadd.ErrDraftNotFound) {
		t.Fatalf("err = %v, want ErrDraftNotFound", err)
	}
}
