package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/project"
	"taskflow/internal/quickadd"
	"taskflow/pkg/quickparse"
)

// StartBatch parses a multi-line buffer into an editable session.
// Blank lines are filtered before per-line parsing, so they never
// become warning drafts.
func (uc *implUseCase) StartBatch(ctx context.Context, sc model.Scope, input quickadd.StartBatchInput) (quickadd.StartBatchOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return quickadd.StartBatchOutput{}, quickadd.ErrEmptyInput
	}

	projects, err := uc.knownProjects(ctx)
	if err != nil {
		return quickadd.StartBatchOutput{}, err
	}

	now := time.Now()
	var drafts []quickadd.BatchDraft
	for _, line := range strings.Split(input.RawText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		draft := uc.batch.Parse(line, now, projects)
		uc.applyDefaultProject(ctx, &draft, input.DefaultProjectID)
		drafts = append(drafts, quickadd.BatchDraft{
			ID:    uuid.NewString(),
			Line:  line,
			Draft: draft,
		})
	}

	if len(drafts) == 0 {
		return quickadd.StartBatchOutput{}, quickadd.ErrEmptyInput
	}

	sess := &quickadd.BatchSession{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Status:    quickadd.SessionParsed,
		Drafts:    drafts,
		CreatedAt: now,
	}

	uc.store.mu.Lock()
	uc.store.put(sess)
	uc.store.mu.Unlock()

	uc.l.Infof(ctx, "StartBatch: session=%s user=%s drafts=%d", sess.ID, sc.UserID, len(drafts))
	return quickadd.StartBatchOutput{Session: *sess}, nil
}

// GetBatch returns a session owned by the caller.
func (uc *implUseCase) GetBatch(ctx context.Context, sc model.Scope, sessionID string) (quickadd.BatchSession, error) {
	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	sess, err := uc.ownedSession(sc, sessionID)
	if err != nil {
		return quickadd.BatchSession{}, err
	}
	return *sess, nil
}

// UpdateDraft edits a draft in place and recomputes its warning from
// the two hard requirements. Edits do not re-run the text parser.
func (uc *implUseCase) UpdateDraft(ctx context.Context, sc model.Scope, input quickadd.UpdateDraftInput) (quickadd.UpdateDraftOutput, error) {
	// Resolve any project change before taking the store lock.
	var newProject *project.Project
	if input.ProjectID != nil && *input.ProjectID != "" {
		p, err := uc.projects.GetOneProject(ctx, projectByID(*input.ProjectID))
		if err != nil {
			return quickadd.UpdateDraftOutput{}, err
		}
		if p.ID == "" {
			return quickadd.UpdateDraftOutput{}, project.ErrProjectNotFound
		}
		newProject = &p
	}

	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	sess, err := uc.ownedSession(sc, input.SessionID)
	if err != nil {
		return quickadd.UpdateDraftOutput{}, err
	}

	idx := draftIndex(sess, input.DraftID)
	if idx < 0 {
		return quickadd.UpdateDraftOutput{}, quickadd.ErrDraftNotFound
	}

	d := &sess.Drafts[idx].Draft
	if input.Title != nil {
		d.Title = strings.TrimSpace(*input.Title)
	}
	if input.ClearDueDate {
		d.DueDate = nil
	} else if input.DueDate != nil {
		d.DueDate = input.DueDate
	}
	if input.DueTime != nil {
		d.DueTime = *input.DueTime
	}
	if input.Priority != nil {
		d.Priority = quickparse.ParsePriority(*input.Priority)
	}
	if newProject != nil {
		d.ProjectID = newProject.ID
		d.ProjectName = newProject.Name
	}
	if input.IsImportant != nil {
		d.IsImportant = *input.IsImportant
	}
	recomputeWarning(d)

	return quickadd.UpdateDraftOutput{Draft: sess.Drafts[idx]}, nil
}

// DeleteDraft removes one draft from the session; others are untouched.
func (uc *implUseCase) DeleteDraft(ctx context.Context, sc model.Scope, input quickadd.DeleteDraftInput) (quickadd.BatchSession, error) {
	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	sess, err := uc.ownedSession(sc, input.SessionID)
	if err != nil {
		return quickadd.BatchSession{}, err
	}

	idx := draftIndex(sess, input.DraftID)
	if idx < 0 {
		return quickadd.BatchSession{}, quickadd.ErrDraftNotFound
	}

	sess.Drafts = append(sess.Drafts[:idx], sess.Drafts[idx+1:]...)
	return *sess, nil
}

// ownedSession looks up a live session and checks ownership. Callers
// must hold the store lock.
func (uc *implUseCase) ownedSession(sc model.Scope, sessionID string) (*quickadd.BatchSession, error) {
	sess, ok := uc.store.get(sessionID)
	if !ok || sess.UserID != sc.UserID {
		return nil, quickadd.ErrSessionNotFound
	}
	return sess, nil
}

func draftIndex(sess *quickadd.BatchSession, draftID string) int {
	for i, d := range sess.Drafts {
		if d.ID == draftID {
			return i
		}
	}
	return -1
}
