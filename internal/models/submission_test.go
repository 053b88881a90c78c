package models

import (
	"encoding/json"
	"testing"
)

func TestGiftDuration_Label(t *testing.T) {
	tests := []struct {
		name     string
		duration GiftDuration
		expected string
	}{
		{"one month", DurationOneMonth, "One Month"},
		{"two months", DurationTwoMonths, "Two Months"},
		{"three months", DurationThreeMonths, "Three Months"},
		{"unknown passes through", "six-months", "six-months"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.duration.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGiftDuration_Valid(t *testing.T) {
	for _, d := range Durations {
		if !d.Valid() {
			t.Errorf("%q.Valid() = false, want true", d)
		}
	}
	for _, d := range []GiftDuration{"", "one-year", "One Month"} {
		if d.Valid() {
			t.Errorf("%q.Valid() = true, want false", d)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{StatusPending, "Pending"},
		{StatusApproved, "Approved"},
		{StatusRejected, "Rejected"},
		{"on-hold", "on-hold"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.expected {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestSubmission_MessageText(t *testing.T) {
	msg := "Happy birthday"
	if got := (&Submission{Message: &msg}).MessageText(); got != msg {
		t.Errorf("MessageText() = %q, want %q", got, msg)
	}
	if got := (&Submission{}).MessageText(); got != "" {
		t.Errorf("MessageText() with nil message = %q, want empty", got)
	}
}

func TestSubmission_NullMessageJSON(t *testing.T) {
	data, err := json.Marshal(Submission{Status: StatusPending})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := decoded["message"]; !ok || v != nil {
		t.Errorf("message = %v (present=%v), want explicit null", v, ok)
	}
	if _, ok := decoded["reviewedAt"]; ok {
		t.Error("reviewedAt should be omitted when nil")
	}
}
