package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status constants
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// GiftDuration is the length of the gifted subscription.
type GiftDuration string

// Duration constants
const (
	DurationOneMonth    GiftDuration = "one-month"
	DurationTwoMonths   GiftDuration = "two-months"
	DurationThreeMonths GiftDuration = "three-months"
)

// Durations lists the selectable durations in display order.
var Durations = []GiftDuration{DurationOneMonth, DurationTwoMonths, DurationThreeMonths}

var durationLabels = map[GiftDuration]string{
	DurationOneMonth:    "One Month",
	DurationTwoMonths:   "Two Months",
	DurationThreeMonths: "Three Months",
}

// Valid reports whether d is one of the known durations.
func (d GiftDuration) Valid() bool {
	_, ok := durationLabels[d]
	return ok
}

// Label returns the display label for d. Unknown values are returned verbatim.
func (d GiftDuration) Label() string {
	if label, ok := durationLabels[d]; ok {
		return label
	}
	return string(d)
}

// Submission is a persisted gift request.
type Submission struct {
	ID                uuid.UUID    `json:"id"`
	UserID            string       `json:"userId"`
	UserName          string       `json:"userName"`
	UserEmail         string       `json:"userEmail"`
	CompanyName       string       `json:"companyName"`
	Department        string       `json:"department"`
	RecipientUsername string       `json:"recipientUsername"`
	RecipientName     string       `json:"recipientName"`
	GiftDuration      GiftDuration `json:"giftDuration"`
	Message           *string      `json:"message"`
	Status            string       `json:"status"` // pending, approved, rejected
	ReviewedAt        *time.Time   `json:"reviewedAt,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// MessageText returns the message or an empty string when none was given.
func (s *Submission) MessageText() string {
	if s.Message == nil {
		return ""
	}
	return *s.Message
}

// Requester returns the identity that created the submission.
func (s *Submission) Requester() Requester {
	return Requester{
		UserID:      s.UserID,
		UserName:    s.UserName,
		UserEmail:   s.UserEmail,
		CompanyName: s.CompanyName,
		Department:  s.Department,
	}
}

// StatusLabel capitalizes a known status for display. Unknown values are
// returned verbatim.
func StatusLabel(status string) string {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return strings.ToUpper(status[:1]) + status[1:]
	}
	return status
}
