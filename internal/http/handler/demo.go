package handler

import (
	"github.com/gofiber/fiber/v2"

	"docgrid/internal/web"
)

// DemoPage serves the embedded single-page catalog UI.
func DemoPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := web.Static.ReadFile("static/index.html")
		if err != nil {
			return fiber.ErrInternalServerError
		}
		c.Type("html")
		return c.Send(page)
	}
}
