package handlers

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"electroserv/internal/apierror"
	applog "electroserv/internal/log"
)

var validar = validator.New()

// bindAndValidate parses the JSON body and runs validator tags. On failure
// it writes the 400 response and the caller must return immediately.
func bindAndValidate(c *fiber.Ctx, req any) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan datos"})
		return false
	}
	if err := validar.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Faltan datos"})
		return false
	}
	return true
}

// respondError maps a service error onto the {"error": mensaje} envelope.
func respondError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(apierror.StatusOf(err)).JSON(fiber.Map{"error": apierror.MensajeOf(err)})
}

// conEliminado flattens a purged record into its JSON fields plus
// "eliminado": true, matching the purge response shape.
func conEliminado(v any) fiber.Map {
	b, _ := json.Marshal(v)
	m := fiber.Map{}
	_ = json.Unmarshal(b, &m)
	m["eliminado"] = true
	return m
}
