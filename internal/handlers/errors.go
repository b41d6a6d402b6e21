package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/services"
)

var validate = validator.New()

// respondError maps the error taxonomy onto HTTP responses: local
// validation failures never carry backend state, in-flight rejections
// tell the page the trigger is still busy, and backend failures surface
// the analyzer's own detail message once.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrActionInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "a request for this action is already in flight",
		})
	}

	var reqErr *analyzer.RequestError
	if errors.As(err, &reqErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": reqErr.Detail,
		})
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": "analyzer backend is unavailable, please retry",
	})
}
