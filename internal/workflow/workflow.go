// Package workflow implements the gift request steps: filling in the form,
// reviewing the draft, submitting it, listing past requests, and the admin
// token check.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"giftrequests/internal/models"
	"giftrequests/internal/validation"
)

// DraftHolder stores the single in-progress draft for a session.
type DraftHolder interface {
	Get(sessionID string) (models.Draft, bool, error)
	Save(sessionID string, d models.Draft) error
	Clear(sessionID string) error
}

// SubmissionStore persists and lists submissions.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub *models.Submission) error
	ListSubmissionsByUser(ctx context.Context, userID string) ([]models.Submission, error)
}

// Listener is told about every accepted submission.
type Listener interface {
	SubmissionCreated(ctx context.Context, sub *models.Submission)
}

// Intake validates drafts and writes them to the store as one create.
type Intake struct {
	store     SubmissionStore
	listeners []Listener
}

// NewIntake creates an intake. Nil listeners are ignored.
func NewIntake(store SubmissionStore, listeners ...Listener) *Intake {
	i := &Intake{store: store}
	for _, l := range listeners {
		if l != nil {
			i.listeners = append(i.listeners, l)
		}
	}
	return i
}

// Create validates the draft and persists it. Nothing is written when
// validation fails.
func (i *Intake) Create(ctx context.Context, d models.Draft) (*models.Submission, error) {
	validation.Normalize(&d)
	if errs := validation.ValidateDraft(d); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if ok, msg := validation.ValidateRequester(d.Requester); !ok {
		return nil, &ValidationError{Fields: map[string]string{models.ParamUserID: msg}}
	}

	sub := d.ToSubmission()
	if err := i.store.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	slog.Info("gift request submitted",
		"submission_id", sub.ID,
		"user_id", sub.UserID,
		"duration", sub.GiftDuration,
	)

	for _, l := range i.listeners {
		l.SubmissionCreated(ctx, sub)
	}
	return sub, nil
}
