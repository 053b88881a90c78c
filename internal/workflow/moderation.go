package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"giftrequests/internal/models"
)

// ErrInvalidStatus is returned for a status filter or decision outside the
// known statuses.
var ErrInvalidStatus = errors.New("invalid status")

// ModerationStore lists all submissions and records review decisions.
type ModerationStore interface {
	ListSubmissions(ctx context.Context, status string) ([]models.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error)
}

// StatusListener is told when a submission is approved or rejected.
type StatusListener interface {
	SubmissionStatusChanged(ctx context.Context, sub *models.Submission)
}

// Moderation lets an authenticated admin review pending submissions.
type Moderation struct {
	store     ModerationStore
	listeners []StatusListener
}

// NewModeration creates a moderation controller. Nil listeners are ignored.
func NewModeration(store ModerationStore, listeners ...StatusListener) *Moderation {
	m := &Moderation{store: store}
	for _, l := range listeners {
		if l != nil {
			m.listeners = append(m.listeners, l)
		}
	}
	return m
}

// List returns every submission, optionally filtered by status. An empty
// status lists all.
func (m *Moderation) List(ctx context.Context, status string) ([]models.Submission, error) {
	if status != "" && !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	subs, err := m.store.ListSubmissions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return subs, nil
}

// Approve marks a pending submission approved.
func (m *Moderation) Approve(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return m.decide(ctx, id, models.StatusApproved)
}

// Reject marks a pending submission rejected.
func (m *Moderation) Reject(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	return m.decide(ctx, id, models.StatusRejected)
}

func (m *Moderation) decide(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error) {
	sub, err := m.store.UpdateSubmissionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	slog.Info("gift request reviewed", "submission_id", sub.ID, "status", sub.Status)

	for _, l := range m.listeners {
		l.SubmissionStatusChanged(ctx, sub)
	}
	return sub, nil
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}
