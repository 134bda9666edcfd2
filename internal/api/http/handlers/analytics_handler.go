package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/observability"
)

// AnalyticsHandler surfaces the in-memory request counters.
type AnalyticsHandler struct {
	metrics *observability.Metrics
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(metrics *observability.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{metrics: metrics}
}

// Metrics handles GET /api/v1/analytics/metrics.
func (h *AnalyticsHandler) Metrics(c *fiber.Ctx) error {
	requests, errs, denied, redirected := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"requests":         requests,
			"errors":           errs,
			"access_denied":    denied,
			"access_redirects": redirected,
		},
	})
}
