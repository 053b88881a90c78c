package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"giftrequests/internal/models"
)

const submissionColumns = `
	id, user_id, user_name, user_email, company_name, department,
	recipient_username, recipient_name, gift_duration, message,
	status, reviewed_at, created_at
`

// CreateSubmission inserts a submission in a single statement. The id,
// status and created_at are assigned by the database.
func (d *DB) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO gift_submissions (
			user_id, user_name, user_email, company_name, department,
			recipient_username, recipient_name, gift_duration, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, status, created_at
	`
	err := d.Pool.QueryRow(ctx, query,
		sub.UserID,
		sub.UserName,
		sub.UserEmail,
		sub.CompanyName,
		sub.Department,
		sub.RecipientUsername,
		sub.RecipientName,
		string(sub.GiftDuration),
		sub.Message,
	).Scan(&sub.ID, &sub.Status, &sub.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23502" || pgErr.Code == "23514") {
			return ErrInvalidSubmission
		}
		return err
	}
	return nil
}

// GetSubmissionByID retrieves a single submission.
func (d *DB) GetSubmissionByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM gift_submissions WHERE id = $1`

	sub, err := scanSubmission(d.Pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// ListSubmissionsByUser returns a requester's submissions, newest first.
// The result is never nil.
func (d *DB) ListSubmissionsByUser(ctx context.Context, userID string) ([]models.Submission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM gift_submissions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return d.querySubmissions(ctx, query, userID)
}

// ListSubmissions returns all submissions, optionally filtered by status,
// newest first.
func (d *DB) ListSubmissions(ctx context.Context, status string) ([]models.Submission, error) {
	if status == "" {
		return d.querySubmissions(ctx, `SELECT `+submissionColumns+`
			FROM gift_submissions
			ORDER BY created_at DESC, id DESC
		`)
	}
	return d.querySubmissions(ctx, `SELECT `+submissionColumns+`
		FROM gift_submissions
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
	`, status)
}

// UpdateSubmissionStatus moves a pending submission to approved or rejected.
// Returns ErrSubmissionNotFound if the submission does not exist or was
// already processed.
func (d *DB) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status string) (*models.Submission, error) {
	query := `
		UPDATE gift_submissions
		SET status = $1, reviewed_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + submissionColumns

	sub, err := scanSubmission(d.Pool.QueryRow(ctx, query, status, time.Now(), id, models.StatusPending))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return nil, ErrInvalidSubmission
		}
		return nil, err
	}
	return sub, nil
}

// CountSubmissionsByStatus returns the number of submissions per status.
func (d *DB) CountSubmissionsByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT status, COUNT(*) FROM gift_submissions GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (d *DB) querySubmissions(ctx context.Context, query string, args ...any) ([]models.Submission, error) {
	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *sub)
	}
	return submissions, rows.Err()
}

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var sub models.Submission
	var duration string
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.UserName, &sub.UserEmail, &sub.CompanyName, &sub.Department,
		&sub.RecipientUsername, &sub.RecipientName, &duration, &sub.Message,
		&sub.Status, &sub.ReviewedAt, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.GiftDuration = models.GiftDuration(duration)
	return &sub, nil
}
