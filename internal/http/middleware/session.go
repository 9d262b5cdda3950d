package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionCookie is the cookie that ties a browser to its catalog.
	SessionCookie = "catalog_session"
	// SessionLocalKey is the key used to store the session id in Fiber's context locals.
	SessionLocalKey = "session_id"
)

// CatalogSession is a middleware that ensures every request carries a
// catalog session id.
//
// Behavior:
// - Reads the catalog_session cookie.
// - If missing or not a UUID, issues a fresh id and sets the cookie.
// - Stores the value in Fiber context locals under SessionLocalKey.
//
// Only well-formed UUIDs are accepted from the client.
func CatalogSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(SessionCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(SessionLocalKey, id)

		return c.Next()
	}
}
