package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"giftrequests/internal/models"
	"giftrequests/internal/testutil"
)

func TestNewRow(t *testing.T) {
	msg := "Enjoy"
	tests := []struct {
		name string
		sub  models.Submission
		want Row
	}{
		{
			name: "known duration and status",
			sub: models.Submission{
				GiftDuration:      models.DurationThreeMonths,
				RecipientUsername: "jdoe",
				RecipientName:     "Jane Doe",
				Status:            models.StatusApproved,
				Message:           &msg,
				CreatedAt:         time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC),
			},
			want: Row{
				Date:              "02/05/2026",
				Duration:          "Three Months",
				RecipientUsername: "jdoe",
				RecipientName:     "Jane Doe",
				Status:            "Approved",
				StatusClass:       "status-approved",
				Message:           "Enjoy",
			},
		},
		{
			name: "unknown values pass through",
			sub: models.Submission{
				GiftDuration: "twelve-months",
				Status:       "On-Hold",
				CreatedAt:    time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			},
			want: Row{
				Date:        "12/31/2025",
				Duration:    "twelve-months",
				Status:      "On-Hold",
				StatusClass: "status-on-hold",
				Message:     "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.sub.ID = uuid.New()
			tt.want.ID = tt.sub.ID.String()
			if got := NewRow(&tt.sub); got != tt.want {
				t.Errorf("NewRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListing_EmptyIsNotAnError(t *testing.T) {
	listing := NewListing(testutil.NewSubmissionStore())

	rows, err := listing.Rows(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("Rows() = %v, want empty non-nil slice", rows)
	}
}

func TestListing_NewestFirst(t *testing.T) {
	store := testutil.NewSubmissionStore()
	ctx := context.Background()
	for _, r := range []string{"a", "b", "c"} {
		store.CreateSubmission(ctx, &models.Submission{UserID: "u", RecipientUsername: r, GiftDuration: models.DurationOneMonth})
	}

	rows, err := NewListing(store).Rows(ctx, "u")
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	var got []string
	for _, r := range rows {
		got = append(got, r.RecipientUsername)
	}
	if len(got) != 3 || got[0] != "c" || got[2] != "a" {
		t.Errorf("Rows() order = %v, want [c b a]", got)
	}
}

func TestListing_StoreError(t *testing.T) {
	store := testutil.NewSubmissionStore()
	storeErr := errors.New("timeout")
	store.ListErr = storeErr

	if _, err := NewListing(store).Rows(context.Background(), "u"); !errors.Is(err, storeErr) {
		t.Errorf("Rows() error = %v, want wrapped store error", err)
	}
}
