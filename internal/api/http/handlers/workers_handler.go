package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/api/dto"
	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/repository"
)

// WorkersHandler exposes worker endpoints. Thin enough to sit directly on
// the repository.
type WorkersHandler struct {
	workers repository.WorkerRepository
}

// NewWorkersHandler constructs handler.
func NewWorkersHandler(workers repository.WorkerRepository) *WorkersHandler {
	return &WorkersHandler{workers: workers}
}

// Create handles POST /api/v1/workers.
func (h *WorkersHandler) Create(c *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	worker := &domain.Worker{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Active:    true,
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}
	if err := h.workers.Create(c.Context(), worker); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": worker})
}

// Update handles PUT /api/v1/workers/:id.
func (h *WorkersHandler) Update(c *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	worker, err := h.workers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if req.Name != "" {
		worker.Name = req.Name
	}
	if req.Email != "" {
		worker.Email = req.Email
	}
	if req.Phone != "" {
		worker.Phone = req.Phone
	}
	if req.Specialty != "" {
		worker.Specialty = req.Specialty
	}
	if req.Active != nil {
		worker.Active = *req.Active
	}
	if err := h.workers.Update(c.Context(), worker); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": worker})
}

// Get handles GET /api/v1/workers/:id.
func (h *WorkersHandler) Get(c *fiber.Ctx) error {
	worker, err := h.workers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": worker})
}

// List handles GET /api/v1/workers, optionally active-only.
func (h *WorkersHandler) List(c *fiber.Ctx) error {
	workers, err := h.workers.List(c.Context(), c.QueryBool("active", false))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workers})
}
