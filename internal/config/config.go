package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Database
	DatabaseURL string

	// Redis backs sessions and drafts when set; otherwise both live in memory.
	RedisURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// Admin gate secret. Empty disables the gate.
	AdminToken string

	// Drafts
	DraftTTL           time.Duration
	DraftSweepInterval time.Duration

	// Events
	AMQPURL      string // env: AMQP_URL, empty disables event publishing
	AMQPExchange string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Gift Requests"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// Email (SMTP)
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "tls", "starttls"

	// Notifications
	NotifyEmail               string // Address told about new submissions
	EmailNotifyOnSubmit       bool
	EmailNotifyOnStatusChange bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; values
// already in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:           getEnv("VIEWS_DIR", "./views"),
		StaticDir:          getEnv("STATIC_DIR", "./static"),
		DatabaseURL:        getEnv("DATABASE_URL", "postgres://localhost:5432/giftrequests?sslmode=disable"),
		RedisURL:           getEnv("REDIS_URL", ""),
		TLSEnabled:         getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:        getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:         getEnv("TLS_KEY_FILE", ""),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		AdminToken:         getEnv("ADMIN_TOKEN", ""),
		DraftTTL:           getEnvDuration("DRAFT_TTL", 24*time.Hour),
		DraftSweepInterval: getEnvDuration("DRAFT_SWEEP_INTERVAL", 10*time.Minute),
		AMQPURL:            getEnv("AMQP_URL", ""),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", "gift_requests"),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Gift Requests"),
		SiteTagline: getEnv("SITE_TAGLINE", "Gift a subscription to a colleague"),
		SiteFooter:  getEnv("SITE_FOOTER", "Gift Requests"),

		SMTPEnabled:  getEnv("SMTP_ENABLED", "") != "",
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Gift Requests"),
		SMTPTLS:      getEnv("SMTP_TLS", "starttls"),

		NotifyEmail:               getEnv("NOTIFY_EMAIL", ""),
		EmailNotifyOnSubmit:       getEnv("EMAIL_NOTIFY_ON_SUBMIT", "true") == "true",
		EmailNotifyOnStatusChange: getEnv("EMAIL_NOTIFY_ON_STATUS_CHANGE", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration ignores values that fail to parse or are not positive.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// Validate rejects settings that are unsafe outside development.
func (c *Config) Validate() error {
	if c.IsDev() {
		return nil
	}
	if c.AdminToken == "" {
		return errors.New("ADMIN_TOKEN is required outside development")
	}
	if len(c.SessionSecret) < 32 || c.SessionSecret == "change-me-in-production-min-32-chars" {
		return errors.New("SESSION_SECRET must be set to at least 32 characters")
	}
	// CORS runs with credentials enabled.
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return errors.New("CORS_ORIGINS must not contain * outside development")
		}
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is fully configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPEnabled && c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsEventsEnabled returns true if an AMQP broker is configured.
func (c *Config) IsEventsEnabled() bool {
	return c.AMQPURL != ""
}
