package config

import (
	"strings"
	"testing"
)

func productionConfig() Config {
	return Config{
		Server: ServerConfig{Environment: "production"},
		Leads: LeadsConfig{
			BaseURL: "https://exitthree.com",
			APIKey:  "c2VjcmV0",
		},
		Email: EmailConfig{
			Enabled: true,
			SMTP: SMTPConfig{
				Host:     "smtp.example.com",
				Port:     465,
				Username: "forms@exitthree.com",
				Password: "hunter2",
			},
		},
		Analytics: AnalyticsConfig{GTMID: "GTM-XXXX"},
	}
}

func TestValidateProduction(t *testing.T) {
	cfg := productionConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on complete config = %v", err)
	}
}

func TestValidateSkippedOutsideProduction(t *testing.T) {
	cfg := Config{Server: ServerConfig{Environment: "development"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() in development = %v, want nil", err)
	}
}

func TestValidateCollectsAllMissing(t *testing.T) {
	cfg := productionConfig()
	cfg.Leads.BaseURL = ""
	cfg.Leads.APIKey = ""
	cfg.Email.SMTP.Password = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	msg := err.Error()
	for _, want := range []string{"leads.base_url", "leads.api_key", "email.smtp.password"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
	if got := strings.Count(msg, "\n"); got != 3 {
		t.Errorf("expected one line per missing variable plus header, got %d newlines:\n%s", got, msg)
	}
}

func TestValidateMissingAPIKey(t *testing.T) {
	cfg := productionConfig()
	cfg.Leads.APIKey = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for missing API key")
	}
	if !strings.Contains(err.Error(), "leads.api_key") {
		t.Errorf("error does not name leads.api_key: %v", err)
	}
}

func TestValidateSMTPOnlyWhenEnabled(t *testing.T) {
	cfg := productionConfig()
	cfg.Email.Enabled = false
	cfg.Email.SMTP = SMTPConfig{}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with email disabled = %v, want nil", err)
	}
}

func TestWarnings(t *testing.T) {
	cfg := productionConfig()
	cfg.Analytics.GTMID = ""

	warnings := cfg.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "analytics.gtm_id") {
		t.Errorf("Warnings() = %v, want one warning about analytics.gtm_id", warnings)
	}

	cfg.Analytics.GTMID = "GTM-XXXX"
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() with GTM id set = %v, want none", w)
	}

	dev := Config{Server: ServerConfig{Environment: "development"}}
	if w := dev.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() in development = %v, want none", w)
	}
}
