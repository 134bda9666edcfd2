package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/field-service/internal/repository"
)

// RolesHandler lists the role records accounts can be assigned to.
type RolesHandler struct {
	roles repository.RoleRepository
}

// NewRolesHandler constructs handler.
func NewRolesHandler(roles repository.RoleRepository) *RolesHandler {
	return &RolesHandler{roles: roles}
}

// List handles GET /api/v1/roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	roles, err := h.roles.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": roles})
}
