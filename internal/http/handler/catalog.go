package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docgrid/internal/catalog"
	"docgrid/internal/service"
)

type ingestRequest struct {
	Files []catalog.Descriptor `json:"files"`
}

// IngestDocuments accepts a JSON batch of file descriptors reported by the
// picker or drag-and-drop surface and registers them in the caller's catalog.
func IngestDocuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ingestRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}

		cards, err := svc.Ingest(c.UserContext(), sessionFromCtx(c), req.Files)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		// An empty batch registers nothing, so there is nothing "created".
		status := fiber.StatusCreated
		if len(cards) == 0 {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(fiber.Map{"data": cards, "total": len(cards)})
	}
}

// UploadDocuments accepts multipart file parts and registers their metadata.
// The part bodies are never read; only name, size and content type survive.
func UploadDocuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		parts := form.File["files"]
		if len(parts) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		batch := make([]catalog.Descriptor, 0, len(parts))
		for _, fh := range parts {
			ct := fh.Header.Get("Content-Type")
			if ct == "" {
				ct = "application/octet-stream"
			}
			batch = append(batch, catalog.Descriptor{
				Name: fh.Filename,
				Size: fh.Size,
				Type: ct,
			})
		}

		cards, err := svc.Ingest(c.UserContext(), sessionFromCtx(c), batch)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": cards, "total": len(cards)})
	}
}

// ListDocuments returns the visible cards of the caller's catalog. A `q`
// parameter, even an empty one, updates the stored search text first; a
// positive `limit` caps how many cards are returned.
func ListDocuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		sid := sessionFromCtx(c)
		var view *service.CatalogView
		if c.Context().QueryArgs().Has("q") {
			view, err = svc.Search(c.UserContext(), sid, c.Query("q"), limit)
		} else {
			view, err = svc.View(c.UserContext(), sid, limit)
		}
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(view)
	}
}

// DeleteDocument removes a document by id. Unknown ids are not an error;
// the removal intent is idempotent and always acknowledged with 204.
func DeleteDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Remove(c.UserContext(), sessionFromCtx(c), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetStats reports how many documents the caller's catalog holds and their
// combined size, raw and humanized.
func GetStats(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), sessionFromCtx(c))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}
