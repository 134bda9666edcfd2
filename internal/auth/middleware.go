package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/field-service/internal/observability"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

const claimKey = "auth_claim"

// Middleware decodes the session cookie and applies the access decision on
// every request.
type Middleware struct {
	sessions *SessionIssuer
	access   *AccessRouter
	cookie   string
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewMiddleware constructs middleware.
func NewMiddleware(sessions *SessionIssuer, access *AccessRouter, cookieName string, logger *zap.Logger) *Middleware {
	return &Middleware{sessions: sessions, access: access, cookie: cookieName, logger: logger}
}

// WithMetrics attaches request metrics so access redirects get counted.
func (m *Middleware) WithMetrics(metrics *observability.Metrics) *Middleware {
	m.metrics = metrics
	return m
}

// Handle routes the request per the access decision: pass-through, redirect
// or 401.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	var claim *Claim
	if raw := c.Cookies(m.cookie); raw != "" {
		decoded, err := m.sessions.Decode(raw)
		switch {
		case err == nil:
			claim = decoded
		case errors.Is(err, ErrTokenExpired):
			// An expired session routes exactly like no session.
		default:
			m.logger.Debug("rejected session token", zap.Error(err))
		}
	}

	decision := m.access.Decide(claim, c.Path())
	switch decision.Outcome {
	case OutcomeRedirect:
		m.metrics.RecordAccessRedirect()
		return c.Redirect(decision.Target, fiber.StatusFound)
	case OutcomeReject:
		return apperrors.NewUnauthorized("authentication required")
	}

	if claim != nil {
		c.Locals(claimKey, claim)
	}
	return c.Next()
}

// ClaimFromContext retrieves the authenticated claim, if any.
func ClaimFromContext(c *fiber.Ctx) (*Claim, bool) {
	val := c.Locals(claimKey)
	if val == nil {
		return nil, false
	}
	claim, ok := val.(*Claim)
	return claim, ok
}
