package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/api/dto"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/repository"
	"github.com/spec-kit/field-service/internal/service"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// JobsHandler exposes job endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// Create handles POST /api/v1/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ClientID == "" || req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "client_id and title required")
	}

	job := &domain.Job{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
		Price:       req.Price,
	}
	if err := h.jobs.Create(c.Context(), job); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": job})
}

// List handles GET /api/v1/jobs with optional client_id, worker_id and
// status filters.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter := repository.JobFilter{}
	if v := c.Query("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := c.Query("worker_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := c.Query("status"); v != "" {
		status := domain.JobStatus(v)
		filter.Status = &status
	}

	jobs, err := h.jobs.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobs})
}

// Mine handles GET /api/v1/jobs/mine for the authenticated technician.
func (h *JobsHandler) Mine(c *fiber.Ctx) error {
	claim, ok := auth.ClaimFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	jobs, err := h.jobs.ListForUser(c.Context(), claim.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobs})
}

// Get handles GET /api/v1/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": job})
}

// Assign handles POST /api/v1/jobs/:id/assign.
func (h *JobsHandler) Assign(c *fiber.Ctx) error {
	var req dto.JobAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.WorkerID == "" {
		return fiber.NewError(http.StatusBadRequest, "worker_id required")
	}

	job, err := h.jobs.Assign(c.Context(), c.Params("id"), req.WorkerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": job})
}

// ChangeStatus handles POST /api/v1/jobs/:id/status.
func (h *JobsHandler) ChangeStatus(c *fiber.Ctx) error {
	var req dto.JobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.ChangeStatus(c.Context(), c.Params("id"), domain.JobStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": job})
}

// AttachPhoto handles POST /api/v1/jobs/:id/photo, recording the URL the
// uploads endpoint returned.
func (h *JobsHandler) AttachPhoto(c *fiber.Ctx) error {
	var req dto.JobPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.URL == "" {
		return fiber.NewError(http.StatusBadRequest, "url required")
	}

	job, err := h.jobs.AttachPhoto(c.Context(), c.Params("id"), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": job})
}

// Schedule handles GET /api/v1/schedule, listing jobs still on the calendar.
func (h *JobsHandler) Schedule(c *fiber.Ctx) error {
	status := domain.JobStatusScheduled
	jobs, err := h.jobs.List(c.Context(), repository.JobFilter{Status: &status})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobs})
}
