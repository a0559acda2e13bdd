package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Leads         LeadsConfig         `mapstructure:"leads"`
	Email         EmailConfig         `mapstructure:"email"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Analytics     AnalyticsConfig     `mapstructure:"analytics"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	Domain         string     `mapstructure:"domain"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

// LeadsConfig holds the backend leads API connection settings. APIKey is the
// pre-encoded Basic credential sent as-is in the Authorization header.
type LeadsConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// EmailConfig configures the notification channel. The SMTP account is both
// the sender and the recipient of contact notifications.
type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// RateLimitConfig declares the per-route request quotas enforced at the
// edge, one sliding window per client IP.
type RateLimitConfig struct {
	Lead  RouteQuota `mapstructure:"lead"`
	Email RouteQuota `mapstructure:"email"`
}

type RouteQuota struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type AnalyticsConfig struct {
	GTMID string `mapstructure:"gtm_id"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Validate is the boot-time environment check. Outside production it is a
// no-op; in production every missing required setting is collected so the
// startup error names all of them at once.
func (c *Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}

	var missing []string

	if c.Leads.BaseURL == "" {
		missing = append(missing, "leads.base_url (FORMGATE_LEADS_BASE_URL) is required in production")
	}
	if c.Leads.APIKey == "" {
		missing = append(missing, "leads.api_key (FORMGATE_LEADS_API_KEY) is required for backend API authentication")
	}

	if c.Email.Enabled {
		if c.Email.SMTP.Host == "" {
			missing = append(missing, "email.smtp.host (FORMGATE_EMAIL_SMTP_HOST) is required when email is enabled")
		}
		if c.Email.SMTP.Username == "" {
			missing = append(missing, "email.smtp.username (FORMGATE_EMAIL_SMTP_USERNAME) is required when email is enabled")
		}
		if c.Email.SMTP.Password == "" {
			missing = append(missing, "email.smtp.password (FORMGATE_EMAIL_SMTP_PASSWORD) is required when email is enabled")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration:\n%s", strings.Join(missing, "\n"))
	}

	return nil
}

// Warnings returns non-fatal configuration findings to be logged once the
// logger is up. Only meaningful in production.
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}

	var warnings []string
	if c.Analytics.GTMID == "" {
		warnings = append(warnings, "analytics.gtm_id is not set - Google Tag Manager will not work")
	}
	return warnings
}
