package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/guard"
)

// PagesHandler serves the dashboard pages. Each page answers with the state
// the client shell renders from; the access decision itself is made by the
// guard middleware in front of these handlers.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Page returns a handler rendering the named page with the caller's session
// snapshot.
func (h *PagesHandler) Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := fiber.Map{"page": name}
		if snap, ok := guard.SnapshotFromContext(c); ok {
			payload["user"] = dto.FromSessionUser(snap.User)
			payload["role"] = snap.Role
			payload["selected_shop"] = snap.Shop
			payload["shop_type"] = snap.ShopDomain
		}
		return c.JSON(payload)
	}
}

// Public returns a handler for pages served without a guard.
func (h *PagesHandler) Public(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": name})
	}
}

// Unauthorized serves /unauthorized with a 403 so the status line matches
// the page.
func (h *PagesHandler) Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"page": "unauthorized"})
}

// NotFound is the catch-all for unknown paths.
func (h *PagesHandler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"page": "not_found", "path": c.Path()})
}
