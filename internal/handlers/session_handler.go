package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/models"
)

// SessionHandler exposes the root view switcher: the active screen tag
// and the selection shared across screens.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// HandleGet handles GET /session.
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	return c.JSON(sessionFrom(c).Snapshot())
}

// HandleSwitchView handles PUT /session/view. Switching screens aborts
// the in-flight backend calls of every other screen.
func (h *SessionHandler) HandleSwitchView(c *fiber.Ctx) error {
	var req models.SwitchViewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	view := models.ViewState(req.View)
	if !view.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown view: " + req.View,
		})
	}

	sess := sessionFrom(c)
	sess.SwitchView(view)
	return c.JSON(sess.Snapshot())
}
