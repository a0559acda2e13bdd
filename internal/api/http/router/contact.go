package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/exitthree/formgate/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, limit fiber.Handler) {
	api.Post("/send-email", h.Send, limit)
}
