package handler

import (
	"github.com/gofiber/fiber/v2"

	"docgrid/internal/notify"
	"docgrid/internal/service"
	"docgrid/internal/session"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, sessions *session.Manager, catSvc service.CatalogService, hub *notify.Hub) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health reports session occupancy; healthz stays a bare liveness probe.
	app.Get("/health", HealthCheck(sessions))
	app.Get("/healthz", LivenessProbe())

	// Catalog surface. Every route resolves the catalog through the session cookie.
	app.Post("/catalog/documents", IngestDocuments(catSvc))
	app.Post("/catalog/uploads", UploadDocuments(catSvc))
	app.Get("/catalog/documents", ListDocuments(catSvc))
	app.Delete("/catalog/documents/:id", DeleteDocument(catSvc))
	app.Get("/catalog/stats", GetStats(catSvc))

	// Event stream is optional; a nil hub means notifications are disabled.
	if hub != nil {
		app.Get("/catalog/events", UpgradeGate(), CatalogEvents(hub))
	}
}
