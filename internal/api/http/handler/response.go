package handler

import "github.com/gofiber/fiber/v3"

func success(c fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"success": true, "message": msg})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
}

func internalError(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": msg})
}
