package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"giftrequests/internal/models"
)

// Review shows the stored draft read-only and submits it.
type Review struct {
	holder DraftHolder
	intake *Intake

	inflight singleflight.Group
	busy     sync.Map // session id -> struct{}
}

// NewReview creates a review controller.
func NewReview(holder DraftHolder, intake *Intake) *Review {
	return &Review{holder: holder, intake: intake}
}

// Load returns the session's draft. A missing draft yields an empty draft
// and found=false, which is not an error.
func (r *Review) Load(sessionID string) (models.Draft, bool, error) {
	return r.holder.Get(sessionID)
}

// Busy reports whether a submit is in flight for the session.
func (r *Review) Busy(sessionID string) bool {
	_, ok := r.busy.Load(sessionID)
	return ok
}

// Submit sends the session's draft to the store as one create and clears
// the draft on success. On failure the draft is kept so the user can retry.
//
// Calls for the same session that overlap an in-flight submit do not create
// another submission; they receive the in-flight call's result with
// shared=true. The call that ran the submit gets shared=false.
func (r *Review) Submit(ctx context.Context, sessionID string) (sub *models.Submission, shared bool, err error) {
	if sessionID == "" {
		return nil, false, ErrNoDraft
	}

	leader := false
	v, err, _ := r.inflight.Do(sessionID, func() (any, error) {
		leader = true
		r.busy.Store(sessionID, struct{}{})
		defer r.busy.Delete(sessionID)
		return r.submit(ctx, sessionID)
	})
	if err != nil {
		return nil, !leader, err
	}
	return v.(*models.Submission), !leader, nil
}

func (r *Review) submit(ctx context.Context, sessionID string) (*models.Submission, error) {
	draft, ok, err := r.holder.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if !ok {
		return nil, ErrNoDraft
	}

	sub, err := r.intake.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	// The submission is stored; a stale draft only costs the user a reload.
	if err := r.holder.Clear(sessionID); err != nil {
		slog.Warn("failed to clear submitted draft", "submission_id", sub.ID, "error", err)
	}
	return sub, nil
}
