package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/exitthree/formgate/internal/api/http/handler"
)

func (r *Router) registerLeadRoutes(api fiber.Router, h *handler.LeadHandler, limit fiber.Handler) {
	api.Post("/submit-lead", h.Submit, limit)
}
