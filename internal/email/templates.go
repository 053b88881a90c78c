package email

import (
	"fmt"
	"html"
	"strings"

	"giftrequests/internal/config"
	"giftrequests/internal/models"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #2C3E50; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1E5A7D; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { background: #f7fbfe; padding: 20px; border: 1px solid #d6e9f5; }
        .footer { padding: 15px; text-align: center; font-size: 12px; color: #6b7280; }
        .info-box { background: white; border: 1px solid #d6e9f5; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; }
        .success { color: #059669; }
        .error { color: #dc2626; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// detailsHTML renders the gift request fields shared by every template.
func detailsHTML(sub *models.Submission) string {
	msg := sub.MessageText()
	if msg == "" {
		msg = "-"
	}
	rows := [][2]string{
		{"Requested by", fmt.Sprintf("%s (%s)", sub.UserName, sub.UserEmail)},
		{"Company", models.OrNA(sub.CompanyName)},
		{"Department", models.OrNA(sub.Department)},
		{"Recipient", fmt.Sprintf("%s (%s)", sub.RecipientName, sub.RecipientUsername)},
		{"Gift Duration", sub.GiftDuration.Label()},
		{"Message", msg},
	}

	var b strings.Builder
	b.WriteString(`<div class="info-box">`)
	for _, r := range rows {
		fmt.Fprintf(&b, `<p><span class="label">%s:</span> %s</p>`, r[0], html.EscapeString(r[1]))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func detailsText(sub *models.Submission) string {
	msg := sub.MessageText()
	if msg == "" {
		msg = "-"
	}
	return fmt.Sprintf(`Requested by: %s (%s)
Company: %s
Department: %s
Recipient: %s (%s)
Gift Duration: %s
Message: %s
`, sub.UserName, sub.UserEmail, models.OrNA(sub.CompanyName), models.OrNA(sub.Department),
		sub.RecipientName, sub.RecipientUsername, sub.GiftDuration.Label(), msg)
}

// SubmissionReceived generates the email sent to the review inbox when a new
// gift request arrives.
func (t *Templates) SubmissionReceived(sub *models.Submission) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New gift request for %s", t.cfg.SiteTitle, sub.RecipientName)

	content := fmt.Sprintf(`<p>A new gift request is waiting for review.</p>
%s
<p>Reference: <code>%s</code></p>`, detailsHTML(sub), sub.ID)

	htmlBody = t.baseHTML(subject, content)
	textBody = fmt.Sprintf(`A new gift request is waiting for review.

%s
Reference: %s
`, detailsText(sub), sub.ID)

	return subject, htmlBody, textBody
}

// SubmissionStatusChanged generates the email sent to the requester when a
// gift request is approved or rejected.
func (t *Templates) SubmissionStatusChanged(sub *models.Submission) (subject, htmlBody, textBody string) {
	label := models.StatusLabel(sub.Status)
	subject = fmt.Sprintf("[%s] Your gift request for %s was %s", t.cfg.SiteTitle, sub.RecipientName, strings.ToLower(label))

	class := "success"
	if sub.Status == models.StatusRejected {
		class = "error"
	}

	link := fmt.Sprintf("%s/my-submissions?%s", t.cfg.BaseURL, sub.Requester().Query())
	content := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your gift request is now <strong class="%s">%s</strong>.</p>
%s
<p><a href="%s">View my gift requests</a></p>`,
		html.EscapeString(sub.Requester().DisplayName()), class, html.EscapeString(label), detailsHTML(sub), html.EscapeString(link))

	htmlBody = t.baseHTML(subject, content)
	textBody = fmt.Sprintf(`Hi %s,

Your gift request is now %s.

%s
View my gift requests: %s
`, sub.Requester().DisplayName(), label, detailsText(sub), link)

	return subject, htmlBody, textBody
}
