package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/services"
)

const sessionCookie = "session_id"

// SessionMiddleware resolves the page session from its cookie, creating
// one on first contact. The session rides the request locals so every
// handler shares the same view state.
func SessionMiddleware(store *services.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := store.GetOrCreate(c.Cookies(sessionCookie))

		if c.Cookies(sessionCookie) != sess.ID {
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				HTTPOnly: true,
				SameSite: "Lax",
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

func sessionFrom(c *fiber.Ctx) *services.Session {
	return c.Locals("session").(*services.Session)
}
