package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/api/dto"
	"github.com/spec-kit/field-service/internal/auth"
	"github.com/spec-kit/field-service/internal/service"
	apperrors "github.com/spec-kit/field-service/pkg/util"
)

// AuthHandler exposes the login, logout and current-session endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
	secure     bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName, secure: secure}
}

// Login handles POST /auth/login. All credential failures answer the same
// generic message; only a store outage gets a distinct, retryable status.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	identity, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTooManyAttempts):
			return apperrors.NewTooManyRequests("too many login attempts, try again later")
		case errors.Is(err, auth.ErrStoreUnavailable):
			return apperrors.NewServiceUnavailable("authentication temporarily unavailable", err)
		default:
			return apperrors.NewUnauthorized("invalid credentials")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			UserID:    identity.SubjectID,
			Name:      identity.Name,
			Email:     identity.Email,
			Role:      identity.Role,
			ExpiresAt: expiresAt,
		},
	})
}

// Logout handles POST /auth/logout by discarding the cookie client-side.
// There is no server-side revocation list; expiry bounds stale tokens.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claim, ok := auth.ClaimFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user_id": claim.SubjectID,
			"role":    claim.Role,
		},
	})
}
