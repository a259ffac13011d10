// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
	GetVersion() string
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetSendGridAPIKey() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetSupportPhone() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// PaymentConfig provides settings for the payment gateway.
type PaymentConfig interface {
	GetStripeSecretKey() string
	GetPaymentTimeout() time.Duration
}

// LeasingConfig provides settings for lease pre-qualification.
type LeasingConfig interface {
	GetLeaseMinAmount() int64
	GetLeaseMaxAmount() int64
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values. It is constructed once
// at process start and passed by reference; nothing reads env vars after Load.
type Config struct {
	Env                string
	Version            string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	RateLimitPerSecond float64
	RateLimitBurst     int

	EmailEnabled     bool
	EmailProvider    string // "sendgrid", "smtp" or "" (noop)
	SendGridAPIKey   string
	EmailFromName    string
	EmailFromAddress string
	SupportPhone     string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string

	StripeSecretKey string
	PaymentTimeout  time.Duration

	LeaseMinAmount int64
	LeaseMaxAmount int64
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string            { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool          { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string       { return c.CORSOrigins }
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }
func (c *Config) GetRateLimitBurst() int         { return c.RateLimitBurst }
func (c *Config) GetVersion() string             { return c.Version }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetSendGridAPIKey() string   { return c.SendGridAPIKey }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetSupportPhone() string     { return c.SupportPhone }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }

// PaymentConfig implementation
func (c *Config) GetStripeSecretKey() string       { return c.StripeSecretKey }
func (c *Config) GetPaymentTimeout() time.Duration { return c.PaymentTimeout }

// LeasingConfig implementation
func (c *Config) GetLeaseMinAmount() int64 { return c.LeaseMinAmount }
func (c *Config) GetLeaseMaxAmount() int64 { return c.LeaseMaxAmount }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	sendGridAPIKey := getEnv("SENDGRID_API_KEY", "")
	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	provider := strings.ToLower(getEnv("EMAIL_PROVIDER", ""))
	if provider == "" {
		switch {
		case sendGridAPIKey != "":
			provider = "sendgrid"
		case smtpHost != "":
			provider = "smtp"
		}
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		Version:            getEnv("APP_VERSION", "1.0.0"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":3000"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RateLimitPerSecond: mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "20")),
		RateLimitBurst:     int(mustInt64(getEnv("RATE_LIMIT_BURST", "40"))),
		EmailEnabled:       emailEnabled && provider != "",
		EmailProvider:      provider,
		SendGridAPIKey:     sendGridAPIKey,
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "PacMac Mobile"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", "orders@pacmacmobile.com"),
		SupportPhone:       getEnv("SUPPORT_PHONE", "402.302.2197"),
		SMTPHost:           smtpHost,
		SMTPPort:           int(mustInt64(getEnv("SMTP_PORT", "587"))),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		StripeSecretKey:    getEnv("STRIPE_SECRET_KEY", ""),
		PaymentTimeout:     mustDuration(getEnv("PAYMENT_TIMEOUT", "15s")),
		LeaseMinAmount:     mustInt64(getEnv("LEASE_MIN_AMOUNT", "150")),
		LeaseMaxAmount:     mustInt64(getEnv("LEASE_MAX_AMOUNT", "3000")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

func mustInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
