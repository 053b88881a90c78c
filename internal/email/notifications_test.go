package email

import (
	"context"
	"testing"

	"giftrequests/internal/config"
)

func TestNewNotifier(t *testing.T) {
	cfg := &config.Config{
		SiteTitle: "Test",
		BaseURL:   "https://test.example.com",
	}

	notifier := NewNotifier(cfg)

	if notifier.service == nil {
		t.Error("Notifier service is nil")
	}
	if notifier.templates == nil {
		t.Error("Notifier templates is nil")
	}
	if notifier.cfg != cfg {
		t.Error("Notifier config not set")
	}
}

// The cases below must return without attempting delivery. The SMTP host
// points at a closed port so an unexpected send only logs an error.
func TestNotifier_SkipsWhenDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{
			name: "smtp disabled",
			cfg: &config.Config{
				EmailNotifyOnSubmit:       true,
				EmailNotifyOnStatusChange: true,
				NotifyEmail:               "review@example.com",
			},
		},
		{
			name: "notifications switched off",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPHost:    "127.0.0.1",
				SMTPPort:    1,
				SMTPFrom:    "noreply@example.com",
				NotifyEmail: "review@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(tt.cfg)
			n.SubmissionCreated(context.Background(), testSubmission())
			n.SubmissionStatusChanged(context.Background(), testSubmission())
		})
	}
}

func TestNotifier_SubmissionCreated_NoInbox(t *testing.T) {
	n := NewNotifier(&config.Config{
		SMTPEnabled:         true,
		SMTPHost:            "127.0.0.1",
		SMTPPort:            1,
		SMTPFrom:            "noreply@example.com",
		EmailNotifyOnSubmit: true,
	})
	n.SubmissionCreated(context.Background(), testSubmission())
}

func TestNotifier_SubmissionStatusChanged_NoRequesterEmail(t *testing.T) {
	n := NewNotifier(&config.Config{
		SMTPEnabled:               true,
		SMTPHost:                  "127.0.0.1",
		SMTPPort:                  1,
		SMTPFrom:                  "noreply@example.com",
		EmailNotifyOnStatusChange: true,
	})
	sub := testSubmission()
	sub.UserEmail = ""
	n.SubmissionStatusChanged(context.Background(), sub)
}
