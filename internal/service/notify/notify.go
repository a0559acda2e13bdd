package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exitthree/formgate/pkg/email"
	"github.com/exitthree/formgate/pkg/sanitize"
	"github.com/exitthree/formgate/pkg/validate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Submission struct {
	Name     string
	JobTitle string
	Company  string
	Email    string
	Topic    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Sender abstracts the outbound SMTP delivery.
type Sender interface {
	Send(ctx context.Context, m email.Message) error
}

type Service interface {
	Submit(ctx context.Context, sub Submission) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notifyService struct {
	sender  Sender
	mailbox string // notification recipient, same account the mail is sent from
}

func New(sender Sender, mailbox string) Service {
	return &notifyService{sender: sender, mailbox: mailbox}
}

// Submit sanitizes the contact submission, validates the required fields,
// and delivers a single plain-text notification. No send happens on a
// validation failure.
func (s *notifyService) Submit(ctx context.Context, sub Submission) error {
	name := sanitize.Clean(sub.Name, 100)
	jobTitle := sanitize.Clean(sub.JobTitle, 100)
	company := sanitize.Clean(sub.Company, 100)
	addr := sanitize.Clean(sub.Email, 254)
	topic := sanitize.Clean(sub.Topic, 200)

	if name == "" || addr == "" || topic == "" {
		return ErrMissingFields
	}
	if !validate.Email(addr) {
		return ErrInvalidEmail
	}

	msg := email.Message{
		To:       []string{s.mailbox},
		Subject:  "Lead - " + topic,
		TextBody: buildBody(name, jobTitle, company, addr, topic),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		// Logged server-side only; the handler returns a generic 500.
		slog.Error("notification email failed", "error", err)
		return err
	}
	return nil
}

func buildBody(name, jobTitle, company, addr, topic string) string {
	return fmt.Sprintf(
		"Name: %s\nJob Title: %s\nCompany: %s\nEmail: %s\nTopic: %s\n",
		name,
		orNotProvided(jobTitle),
		orNotProvided(company),
		addr,
		topic,
	)
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
