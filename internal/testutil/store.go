package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"giftrequests/internal/db"
	"giftrequests/internal/models"
)

// SubmissionStore is an in-memory stand-in for the Postgres submission
// store. It assigns ids, timestamps and the pending status like the
// database does.
type SubmissionStore struct {
	mu          sync.Mutex
	submissions []models.Submission
	clock       time.Time

	// CreateErr, when set, is returned by CreateSubmission without storing.
	CreateErr error
	// ListErr, when set, is returned by the list methods.
	ListErr error
	// BeforeCreate runs before a submission is stored, outside the lock.
	BeforeCreate func()
}

// NewSubmissionStore creates an empty store.
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{clock: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

// CreateSubmission stores a copy of sub.
func (s *SubmissionStore) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	if s.BeforeCreate != nil {
		s.BeforeCreate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.clock = s.clock.Add(time.Minute)
	sub.ID = uuid.New()
	sub.Status = models.StatusPending
	sub.CreatedAt = s.clock
	s.submissions = append(s.submissions, *sub)
	return nil
}

// ListSubmissionsByUser returns the user's submissions newest first.
func (s *SubmissionStore) ListSubmissionsByUser(ctx context.Context, userID string) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}

	out := []models.Submission{}
	for i := len(s.submissions) - 1; i >= 0; i-- {
		if s.submissions[i].UserID == userID {
			out = append(out, s.submissions[i])
		}
	}
	return out, nil
}

// ListSubmissions returns all submissions newest first, optionally filtered
// by status.
func (s *SubmissionStore) ListSubmissions(ctx context.Context, status string) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}

	out := []models.Submission{}
	for i := len(s.submissions) - 1; i >= 0; i-- {
		if status == "" || s.submissions[i].Status == status {
			out = append(out, s.submissions[i])
		}
	}
	return out, nil
}

// GetSubmissionByID returns db.ErrSubmissionNotFound for unknown ids.
func (s *SubmissionStore) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			sub := s.submissions[i]
			return &sub, nil
		}
	}
	return nil, db.ErrSubmissionNotFound
}

// UpdateSubmissionStatus changes a pending submission's status.
func (s *SubmissionStore) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id && s.submissions[i].Status == models.StatusPending {
			now := s.clock
			s.submissions[i].Status = status
			s.submissions[i].ReviewedAt = &now
			sub := s.submissions[i]
			return &sub, nil
		}
	}
	return nil, db.ErrSubmissionNotFound
}

// Count returns the number of stored submissions.
func (s *SubmissionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.submissions)
}

// CountSubmissionsByStatus returns the number of submissions per status.
func (s *SubmissionStore) CountSubmissionsByStatus(ctx context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ListErr != nil {
		return nil, s.ListErr
	}
	counts := make(map[string]int64)
	for _, sub := range s.submissions {
		counts[sub.Status]++
	}
	return counts, nil
}
