package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restock-api/internal/application/dto"
)

// success renderiza el sobre {"success": true, "payload": ...} con HTTP 200.
func success(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(dto.SuccessResponse{Success: true, Payload: payload})
}

// fail renderiza {"success": false, "errors": [...]} con el status dado.
// El contrato externo lleva siempre un único mensaje en la lista.
func fail(c *fiber.Ctx, status int, messages ...string) error {
	return c.Status(status).JSON(dto.FailResponse{Success: false, Errors: messages})
}
