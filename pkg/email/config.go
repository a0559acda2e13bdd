package email

import (
	"time"

	"github.com/exitthree/formgate/config"
)

// Config holds email client configuration
type Config struct {
	Enabled bool
	From    string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for email configuration
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		SMTPPort:           465,
		SMTPUseTLS:         true,
		SMTPTimeoutSeconds: 10,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.EmailConfig to package Config,
// starting from DefaultConfig for anything unset. The SMTP account is both
// the sender and the notification recipient, so From is always the SMTP
// username.
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := DefaultConfig()
	cfg.Enabled = c.Enabled
	cfg.From = c.SMTP.Username
	cfg.SMTPHost = c.SMTP.Host
	cfg.SMTPUsername = c.SMTP.Username
	cfg.SMTPPassword = c.SMTP.Password
	cfg.SMTPUseTLS = c.SMTP.UseTLS
	if c.SMTP.Port != 0 {
		cfg.SMTPPort = c.SMTP.Port
	}
	if c.SMTP.TimeoutSeconds > 0 {
		cfg.SMTPTimeoutSeconds = c.SMTP.TimeoutSeconds
	}
	return cfg
}
