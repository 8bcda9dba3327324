package usecase

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/quickadd"
	"taskflow/internal/task"
)

// SubmitBatch bulk-creates all submittable drafts. Non-submittable
// drafts are silently excluded from the payload and stay in the
// session. Successfully created drafts leave the session so a retry
// cannot duplicate them; failed and excluded drafts remain.
func (uc *implUseCase) SubmitBatch(ctx context.Context, sc model.Scope, input quickadd.SubmitBatchInput) (quickadd.SubmitBatchOutput, error) {
	uc.store.mu.Lock()

	sess, err := uc.ownedSession(sc, input.SessionID)
	if err != nil {
		uc.store.mu.Unlock()
		return quickadd.SubmitBatchOutput{}, err
	}
	if sess.Status == quickadd.SessionSubmitting {
		uc.store.mu.Unlock()
		return quickadd.SubmitBatchOutput{}, quickadd.ErrSubmitInProgress
	}

	var items []task.BulkItem
	for _, d := range sess.Drafts {
		if !d.Draft.Submittable() {
			continue
		}
		items = append(items, task.BulkItem{
			Ref:             d.ID,
			CreateTaskInput: draftToCreateInput(d.Draft),
		})
	}
	if len(items) == 0 {
		uc.store.mu.Unlock()
		return quickadd.SubmitBatchOutput{}, quickadd.ErrNothingToSubmit
	}

	sess.Status = quickadd.SessionSubmitting
	sess.SubmittedCount = 0
	uc.store.mu.Unlock()

	out, err := uc.tasks.CreateBulk(ctx, sc, task.CreateBulkInput{Items: items})

	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	if err != nil {
		// Transport-level failure: drafts stay intact for a manual retry.
		uc.l.Errorf(ctx, "SubmitBatch: CreateBulk: %v", err)
		sess.Status = quickadd.SessionParsed
		return quickadd.SubmitBatchOutput{}, err
	}

	createdRefs := make(map[string]bool, len(out.Created))
	result := quickadd.SubmitBatchOutput{SubmittedCount: len(out.Created)}
	for _, c := range out.Created {
		result.CreatedIDs = append(result.CreatedIDs, c.Task.ID)
		createdRefs[c.Ref] = true
	}
	for _, f := range out.Failed {
		result.Failed = append(result.Failed, quickadd.SubmitFailure{DraftID: f.Ref, Reason: f.Reason})
	}

	// Drop created drafts from the session.
	kept := sess.Drafts[:0]
	for _, d := range sess.Drafts {
		if !createdRefs[d.ID] {
			kept = append(kept, d)
		}
	}
	sess.Drafts = kept
	sess.SubmittedCount = len(out.Created)

	if len(out.Failed) == 0 {
		sess.Status = quickadd.SessionCompleted
		uc.store.delete(sess.ID)
	} else {
		sess.Status = quickadd.SessionParsed
	}
	result.Status = sess.Status

	uc.l.Infof(ctx, "SubmitBatch: session=%s created=%d failed=%d", sess.ID, len(out.Created), len(out.Failed))
	return result, nil
}
