package email

import (
	"context"

	"giftrequests/internal/config"
	"giftrequests/internal/models"
)

// Notifier sends email notifications for gift request events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// SubmissionCreated tells the review inbox about a new gift request.
func (n *Notifier) SubmissionCreated(ctx context.Context, sub *models.Submission) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyOnSubmit || n.cfg.NotifyEmail == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SubmissionReceived(sub)
	n.service.SendAsync([]string{n.cfg.NotifyEmail}, subject, htmlBody, textBody)
}

// SubmissionStatusChanged tells the requester their gift request was
// approved or rejected.
func (n *Notifier) SubmissionStatusChanged(ctx context.Context, sub *models.Submission) {
	if !n.service.IsEnabled() || !n.cfg.EmailNotifyOnStatusChange || sub.UserEmail == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.SubmissionStatusChanged(sub)
	n.service.SendAsync([]string{sub.UserEmail}, subject, htmlBody, textBody)
}
