package validation

import (
	"strings"
	"testing"

	"giftrequests/internal/models"
)

func validDraft() models.Draft {
	return models.Draft{
		RecipientUsername: "jdoe",
		RecipientName:     "Jane Doe",
		GiftDuration:      models.DurationTwoMonths,
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *models.Draft)
		wantFields []string
	}{
		{
			name:   "valid draft without message",
			mutate: func(d *models.Draft) {},
		},
		{
			name:   "valid draft with message",
			mutate: func(d *models.Draft) { d.Message = "Enjoy!" },
		},
		{
			name:       "missing recipient username",
			mutate:     func(d *models.Draft) { d.RecipientUsername = "" },
			wantFields: []string{models.FieldRecipientUsername},
		},
		{
			name:       "missing recipient name",
			mutate:     func(d *models.Draft) { d.RecipientName = "" },
			wantFields: []string{models.FieldRecipientName},
		},
		{
			name:       "missing duration",
			mutate:     func(d *models.Draft) { d.GiftDuration = "" },
			wantFields: []string{models.FieldGiftDuration},
		},
		{
			name:       "unknown duration",
			mutate:     func(d *models.Draft) { d.GiftDuration = "one-year" },
			wantFields: []string{models.FieldGiftDuration},
		},
		{
			name:       "message too long",
			mutate:     func(d *models.Draft) { d.Message = strings.Repeat("x", MaxMessageLength+1) },
			wantFields: []string{models.FieldMessage},
		},
		{
			name: "everything missing",
			mutate: func(d *models.Draft) {
				*d = models.Draft{}
			},
			wantFields: []string{models.FieldRecipientUsername, models.FieldRecipientName, models.FieldGiftDuration},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			errs := ValidateDraft(d)
			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("ValidateDraft() = %v, want nil", errs)
				}
				return
			}
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("ValidateDraft() = %v, want errors for %v", errs, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := errs[f]; !ok {
					t.Errorf("ValidateDraft() missing error for %q: %v", f, errs)
				}
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	d := models.Draft{
		RecipientUsername: "  jdoe ",
		RecipientName:     "\tJane Doe\n",
		GiftDuration:      " one-month ",
		Message:           "  Happy birthday!\n",
	}
	Normalize(&d)

	if d.RecipientUsername != "jdoe" || d.RecipientName != "Jane Doe" || d.GiftDuration != models.DurationOneMonth {
		t.Errorf("Normalize() = %+v", d)
	}
	if d.Message != "  Happy birthday!\n" {
		t.Errorf("Normalize() changed message to %q", d.Message)
	}

	padded := models.Draft{
		RecipientUsername: "jdoe",
		RecipientName:     "Jane Doe",
		GiftDuration:      models.DurationOneMonth,
		Message:           " " + strings.Repeat("x", MaxMessageLength) + " ",
	}
	Normalize(&padded)
	if errs := ValidateDraft(padded); errs[models.FieldMessage] == "" {
		t.Error("surrounding whitespace should count toward the message length")
	}

	if errs := ValidateDraft(models.Draft{RecipientUsername: "   "}); errs[models.FieldRecipientUsername] == "" {
		t.Error("whitespace-only username should still be rejected after normalization")
	}
}

func TestValidateRequester(t *testing.T) {
	tests := []struct {
		name      string
		requester models.Requester
		valid     bool
	}{
		{"user id only", models.Requester{UserID: "u-123"}, true},
		{"full identity", models.Requester{UserID: "42", UserName: "Sam", UserEmail: "sam@example.com", CompanyName: "Acme", Department: "Ops"}, true},
		{"email-like user id", models.Requester{UserID: "sam@example.com"}, true},
		{"missing user id", models.Requester{UserName: "Sam"}, false},
		{"user id with spaces", models.Requester{UserID: "sam smith"}, false},
		{"user id with script", models.Requester{UserID: "<script>"}, false},
		{"invalid email", models.Requester{UserID: "42", UserEmail: "not-an-email"}, false},
		{"overlong company", models.Requester{UserID: "42", CompanyName: strings.Repeat("a", MaxIdentityLength+1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateRequester(tt.requester)
			if valid != tt.valid {
				t.Errorf("ValidateRequester() = %v (%q), want %v", valid, msg, tt.valid)
			}
			if !valid && msg == "" {
				t.Error("invalid requester should carry a message")
			}
		})
	}
}

func TestNormalizeRequester(t *testing.T) {
	r := models.Requester{UserID: "  u-1 ", UserName: " Alex ", UserEmail: " a@example.com", CompanyName: "Acme ", Department: " "}
	NormalizeRequester(&r)

	want := models.Requester{UserID: "u-1", UserName: "Alex", UserEmail: "a@example.com", CompanyName: "Acme"}
	if r != want {
		t.Errorf("NormalizeRequester() = %+v, want %+v", r, want)
	}
}
