package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/api/dto"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/domain"
	"github.com/spec-kit/field-service/internal/service"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// CashHandler exposes the cash ledger and its summary report.
type CashHandler struct {
	cash *service.CashService
}

// NewCashHandler constructs handler.
func NewCashHandler(cash *service.CashService) *CashHandler {
	return &CashHandler{cash: cash}
}

// Create handles POST /api/v1/cash-transactions.
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var req dto.CashTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	claim, ok := auth.ClaimFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	tx := &domain.CashTransaction{
		Type:        domain.CashTransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		JobID:       req.JobID,
		CreatedBy:   claim.SubjectID,
	}
	if req.OccurredAt != nil {
		tx.OccurredAt = *req.OccurredAt
	}
	if err := h.cash.Record(c.Context(), tx); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": tx})
}

// Delete handles DELETE /api/v1/cash-transactions/:id.
func (h *CashHandler) Delete(c *fiber.Ctx) error {
	if err := h.cash.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// List handles GET /api/v1/cash-transactions?from=...&to=...
func (h *CashHandler) List(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return err
	}
	txs, err := h.cash.ListByPeriod(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": txs})
}

// Summary handles GET /api/v1/reports/cash-summary?from=...&to=...
func (h *CashHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return err
	}
	summary, err := h.cash.Summarize(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// parsePeriod reads from/to query params, defaulting to the last 30 days.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(http.StatusBadRequest, "invalid from timestamp")
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(http.StatusBadRequest, "invalid to timestamp")
		}
		to = parsed
	}
	return from, to, nil
}
