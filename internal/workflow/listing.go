package workflow

import (
	"context"
	"fmt"
	"strings"

	"giftrequests/internal/models"
)

// DateLayout is the MM/DD/YYYY format used in the listing.
const DateLayout = "01/02/2006"

// Row is one submission prepared for display.
type Row struct {
	ID                string
	Date              string
	Duration          string
	RecipientUsername string
	RecipientName     string
	Status            string
	StatusClass       string
	Message           string
}

// Listing fetches a requester's submissions.
type Listing struct {
	store SubmissionStore
}

// NewListing creates a listing controller.
func NewListing(store SubmissionStore) *Listing {
	return &Listing{store: store}
}

// Submissions returns the requester's submissions in store order (newest first).
func (l *Listing) Submissions(ctx context.Context, userID string) ([]models.Submission, error) {
	subs, err := l.store.ListSubmissionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return subs, nil
}

// Rows returns the requester's submissions formatted for the listing page.
// An empty slice means the empty state should be shown.
func (l *Listing) Rows(ctx context.Context, userID string) ([]Row, error) {
	subs, err := l.Submissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(subs))
	for i := range subs {
		rows = append(rows, NewRow(&subs[i]))
	}
	return rows, nil
}

// NewRow formats a submission for display.
func NewRow(s *models.Submission) Row {
	msg := s.MessageText()
	if msg == "" {
		msg = "-"
	}
	return Row{
		ID:                s.ID.String(),
		Date:              s.CreatedAt.Format(DateLayout),
		Duration:          s.GiftDuration.Label(),
		RecipientUsername: s.RecipientUsername,
		RecipientName:     s.RecipientName,
		Status:            models.StatusLabel(s.Status),
		StatusClass:       "status-" + strings.ToLower(s.Status),
		Message:           msg,
	}
}
