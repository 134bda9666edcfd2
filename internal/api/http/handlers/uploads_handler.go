package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/storage"
)

// UploadsHandler stores binary payloads in object storage and returns their
// public URLs.
type UploadsHandler struct {
	store storage.ObjectStore
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(store storage.ObjectStore) *UploadsHandler {
	return &UploadsHandler{store: store}
}

// Upload handles POST /api/v1/uploads. Multipart field "file" is the
// payload; optional "folder" is the logical folder key.
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	if h.store == nil {
		return fiber.NewError(http.StatusServiceUnavailable, "object storage not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "file required")
	}

	folder := c.FormValue("folder", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	url, err := h.store.Upload(
		c.Context(),
		folder,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"url": url}})
}
