package lead

import (
	"context"
	"log/slog"

	"github.com/exitthree/formgate/pkg/leadsapi"
	"github.com/exitthree/formgate/pkg/sanitize"
	"github.com/exitthree/formgate/pkg/validate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Submission struct {
	FullName    string
	Position    string
	CompanyName string
	Email       string
	Category    string
}

// Categories is the closed set of lead categories accepted from the form.
var Categories = []string{
	"web_dev",
	"mobile_dev",
	"automated_testing",
	"social_media_auto",
	"ecommerce_auto",
	"sales_auto",
}

func ValidCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Forwarder abstracts the outbound leads API call.
type Forwarder interface {
	Create(ctx context.Context, lead leadsapi.Lead) error
}

type Service interface {
	Submit(ctx context.Context, req Submission) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type leadService struct {
	api Forwarder
}

func New(api Forwarder) Service {
	return &leadService{api: api}
}

// Submit validates and sanitizes the submission, then forwards it with one
// authenticated call. Nothing leaves the process unless every check passes.
func (s *leadService) Submit(ctx context.Context, req Submission) error {
	if req.FullName == "" || req.Position == "" || req.CompanyName == "" || req.Email == "" || req.Category == "" {
		return ErrMissingFields
	}
	if !validate.Email(req.Email) {
		return ErrInvalidEmail
	}
	if !ValidCategory(req.Category) {
		return ErrInvalidCategory
	}

	// Category passes through unmodified: already checked against the
	// closed set above.
	rec := leadsapi.Lead{
		FullName:    sanitize.Trim(req.FullName, 100),
		Position:    sanitize.Trim(req.Position, 100),
		CompanyName: sanitize.Trim(req.CompanyName, 100),
		Email:       sanitize.Trim(req.Email, 100),
		Category:    req.Category,
	}

	if err := s.api.Create(ctx, rec); err != nil {
		// Logged server-side only; the handler returns a generic 500.
		slog.Error("lead forwarding failed", "error", err)
		return err
	}
	return nil
}
