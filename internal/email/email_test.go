package email

import (
	"strings"
	"testing"

	"giftrequests/internal/config"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.Config
		wantEnabled bool
	}{
		{
			name: "enabled when all SMTP settings configured",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPHost:    "smtp.example.com",
				SMTPPort:    587,
				SMTPFrom:    "noreply@example.com",
			},
			wantEnabled: true,
		},
		{
			name: "disabled when SMTPEnabled is false",
			cfg: &config.Config{
				SMTPHost: "smtp.example.com",
				SMTPPort: 587,
				SMTPFrom: "noreply@example.com",
			},
			wantEnabled: false,
		},
		{
			name: "disabled when SMTPHost is empty",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPPort:    587,
				SMTPFrom:    "noreply@example.com",
			},
			wantEnabled: false,
		},
		{
			name: "disabled when SMTPFrom is empty",
			cfg: &config.Config{
				SMTPEnabled: true,
				SMTPHost:    "smtp.example.com",
				SMTPPort:    587,
			},
			wantEnabled: false,
		},
		{
			name:        "disabled with empty config",
			cfg:         &config.Config{},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg)
			if svc.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", svc.IsEnabled(), tt.wantEnabled)
			}
		})
	}
}

func TestSendEmail_DisabledIsNoop(t *testing.T) {
	svc := NewService(&config.Config{})
	if err := svc.SendEmail([]string{"someone@example.com"}, "Subject", "<p>hi</p>", "hi"); err != nil {
		t.Errorf("SendEmail() on disabled service error = %v", err)
	}
}

func TestSendEmail_NoRecipients(t *testing.T) {
	svc := NewService(&config.Config{
		SMTPEnabled: true,
		SMTPHost:    "127.0.0.1",
		SMTPPort:    1,
		SMTPFrom:    "noreply@example.com",
	})
	if err := svc.SendEmail(nil, "Subject", "<p>hi</p>", "hi"); err != nil {
		t.Errorf("SendEmail() with no recipients error = %v", err)
	}
}

func TestBuildMessage_Multipart(t *testing.T) {
	msg := buildMessage("Gift Requests <noreply@example.com>", []string{"a@example.com", "b@example.com"},
		"Hello", "<p>html body</p>", "text body")

	checks := []string{
		"From: Gift Requests <noreply@example.com>\r\n",
		"To: a@example.com, b@example.com\r\n",
		"Subject: Hello\r\n",
		"MIME-Version: 1.0\r\n",
		"multipart/alternative; boundary=\"" + mimeBoundary + "\"",
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\ntext body",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n<p>html body</p>",
		"--" + mimeBoundary + "--\r\n",
	}
	for _, check := range checks {
		if !strings.Contains(msg, check) {
			t.Errorf("message missing %q", check)
		}
	}

	if strings.Index(msg, "text body") > strings.Index(msg, "html body") {
		t.Error("plain text part should come before the HTML part")
	}
}

func TestBuildMessage_SinglePart(t *testing.T) {
	tests := []struct {
		name        string
		htmlBody    string
		textBody    string
		wantType    string
		wantBody    string
		notContains string
	}{
		{"html only", "<p>only html</p>", "", "text/html", "<p>only html</p>", "multipart"},
		{"text only", "", "only text", "text/plain", "only text", "multipart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := buildMessage("noreply@example.com", []string{"a@example.com"}, "S", tt.htmlBody, tt.textBody)
			if !strings.Contains(msg, "Content-Type: "+tt.wantType) {
				t.Errorf("message missing content type %q:\n%s", tt.wantType, msg)
			}
			if !strings.Contains(msg, tt.wantBody) {
				t.Errorf("message missing body %q", tt.wantBody)
			}
			if strings.Contains(msg, tt.notContains) {
				t.Errorf("message should not contain %q", tt.notContains)
			}
		})
	}
}
