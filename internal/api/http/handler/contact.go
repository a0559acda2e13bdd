package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/exitthree/formgate/internal/service/notify"
)

type ContactHandler struct {
	svc notify.Service
}

func NewContactHandler(svc notify.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type sendEmailRequest struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Topic    string `json:"topic"`
}

// Send handles POST /api/send-email.
func (h *ContactHandler) Send(c fiber.Ctx) error {
	var req sendEmailRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	err := h.svc.Submit(c.Context(), notify.Submission{
		Name:     req.Name,
		JobTitle: req.JobTitle,
		Company:  req.Company,
		Email:    req.Email,
		Topic:    req.Topic,
	})
	switch {
	case err == nil:
		return success(c, "Email sent successfully!")
	case errors.Is(err, notify.ErrMissingFields):
		return badRequest(c, "Missing required fields: name, email, and topic are required")
	case errors.Is(err, notify.ErrInvalidEmail):
		return badRequest(c, "Invalid email address format")
	default:
		return internalError(c, "Failed to send email.")
	}
}
