package handler

import (
	"github.com/gofiber/fiber/v2"

	"docgrid/internal/session"
)

// HealthCheck reports service health along with the number of live catalog
// sessions, so dashboards can see occupancy at a glance.
func HealthCheck(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"sessions": sessions.Active(),
		})
	}
}

// LivenessProbe is the bare liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
