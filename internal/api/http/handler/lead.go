package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/exitthree/formgate/internal/service/lead"
)

type LeadHandler struct {
	svc lead.Service
}

func NewLeadHandler(svc lead.Service) *LeadHandler {
	return &LeadHandler{svc: svc}
}

type submitLeadRequest struct {
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
}

// Submit handles POST /api/submit-lead. Validation failures map to 400 with
// the specific violation; anything downstream is a generic 500 that never
// carries the underlying error.
func (h *LeadHandler) Submit(c fiber.Ctx) error {
	var req submitLeadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	err := h.svc.Submit(c.Context(), lead.Submission{
		FullName:    req.FullName,
		Position:    req.Position,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Category:    req.Category,
	})
	switch {
	case err == nil:
		return success(c, "Lead submitted successfully")
	case errors.Is(err, lead.ErrMissingFields):
		return badRequest(c, "Missing required fields")
	case errors.Is(err, lead.ErrInvalidEmail):
		return badRequest(c, "Invalid email format")
	case errors.Is(err, lead.ErrInvalidCategory):
		return badRequest(c, "Invalid category")
	default:
		return internalError(c, "Failed to submit lead")
	}
}
