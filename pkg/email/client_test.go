package email

import (
	"context"
	"errors"
	"testing"

	"github.com/exitthree/formgate/config"
)

func centralEmailConfig(username string) config.EmailConfig {
	return config.EmailConfig{
		Enabled: true,
		SMTP: config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     465,
			Username: username,
			Password: "hunter2",
			UseTLS:   true,
		},
	}
}

func TestSendDisabled(t *testing.T) {
	client, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Send(context.Background(), Message{
		To:       []string{"forms@exitthree.com"},
		Subject:  "Lead - Test",
		TextBody: "body",
	})
	if !errors.As(err, &ErrDisabled{}) {
		t.Errorf("Send() on disabled client = %v, want ErrDisabled", err)
	}
}

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		msg     Message
		wantErr bool
	}{
		{
			name: "complete message",
			from: "forms@exitthree.com",
			msg: Message{
				To:       []string{"forms@exitthree.com"},
				Subject:  "Lead - Automation",
				TextBody: "Name: Jane Doe",
			},
			wantErr: false,
		},
		{
			name: "missing from",
			from: "",
			msg: Message{
				To:       []string{"forms@exitthree.com"},
				Subject:  "Lead - Automation",
				TextBody: "body",
			},
			wantErr: true,
		},
		{
			name: "missing recipient",
			from: "forms@exitthree.com",
			msg: Message{
				Subject:  "Lead - Automation",
				TextBody: "body",
			},
			wantErr: true,
		},
		{
			name: "blank recipients are dropped",
			from: "forms@exitthree.com",
			msg: Message{
				To:       []string{"  ", ""},
				Subject:  "Lead - Automation",
				TextBody: "body",
			},
			wantErr: true,
		},
		{
			name: "missing subject",
			from: "forms@exitthree.com",
			msg: Message{
				To:       []string{"forms@exitthree.com"},
				TextBody: "body",
			},
			wantErr: true,
		},
		{
			name: "missing body",
			from: "forms@exitthree.com",
			msg: Message{
				To:      []string{"forms@exitthree.com"},
				Subject: "Lead - Automation",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if tt.wantErr && err == nil {
				t.Error("buildMessage() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("buildMessage() error = %v", err)
			}
		})
	}
}

func TestFromCentralConfigSenderIsMailboxAccount(t *testing.T) {
	cfg := FromCentralConfig(centralEmailConfig("forms@exitthree.com"))
	if cfg.From != "forms@exitthree.com" {
		t.Errorf("From = %q, want the SMTP username", cfg.From)
	}
	if cfg.From != cfg.SMTPUsername {
		t.Errorf("From = %q, SMTPUsername = %q, want the same account", cfg.From, cfg.SMTPUsername)
	}
}

func TestFromCentralConfigAppliesDefaults(t *testing.T) {
	central := centralEmailConfig("forms@exitthree.com")
	central.SMTP.Port = 0
	central.SMTP.TimeoutSeconds = 0

	cfg := FromCentralConfig(central)
	def := DefaultConfig()
	if cfg.SMTPPort != def.SMTPPort {
		t.Errorf("SMTPPort = %d, want default %d", cfg.SMTPPort, def.SMTPPort)
	}
	if cfg.SMTPTimeoutSeconds != def.SMTPTimeoutSeconds {
		t.Errorf("SMTPTimeoutSeconds = %d, want default %d", cfg.SMTPTimeoutSeconds, def.SMTPTimeoutSeconds)
	}

	central.SMTP.Port = 587
	central.SMTP.TimeoutSeconds = 5
	cfg = FromCentralConfig(central)
	if cfg.SMTPPort != 587 || cfg.SMTPTimeoutSeconds != 5 {
		t.Errorf("explicit settings not kept: port = %d, timeout = %d", cfg.SMTPPort, cfg.SMTPTimeoutSeconds)
	}
}
