package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/guard"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// AuthHandler exposes the browser session flows: login, logout, refresh,
// shop selection and password management. Every endpoint works on the
// cookie-bound session, not on bearer tokens.
type AuthHandler struct {
	auth     *service.AuthService
	resolver *guard.Resolver
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth *service.AuthService, resolver *guard.Resolver) *AuthHandler {
	return &AuthHandler{auth: auth, resolver: resolver}
}

// sessionState builds the state payload the dashboard boots from.
func (h *AuthHandler) sessionState(c *fiber.Ctx) dto.SessionStateResponse {
	sess := h.resolver.Resolve(c)
	snap := sess.Snapshot(c.Context())
	return dto.SessionStateResponse{
		Authenticated: sess.ValidateAuthState(c.Context()),
		User:          dto.FromSessionUser(snap.User),
		Role:          snap.Role,
		SelectedShop:  snap.Shop,
		ShopType:      snap.ShopDomain,
		RootPath:      guard.ResolveRoot(snap),
	}
}

// Login handles POST /auth/login. A successful login writes the token pair
// and user record into the session; a shop picked before the login is kept.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	sess := h.resolver.Resolve(c)
	if _, err := h.auth.Login(c.Context(), sess, req.Email, req.Password); err != nil {
		return err
	}
	return c.JSON(h.sessionState(c))
}

// Logout handles POST /auth/logout. Always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := h.resolver.Resolve(c)
	h.auth.Logout(c.Context(), sess)
	return c.JSON(h.sessionState(c))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	sess := h.resolver.Resolve(c)
	if err := h.auth.Refresh(c.Context(), sess); err != nil {
		return err
	}
	return c.JSON(h.sessionState(c))
}

// SelectShop handles POST /auth/select-shop.
func (h *AuthHandler) SelectShop(c *fiber.Ctx) error {
	var req dto.SelectShopRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	sess := h.resolver.Resolve(c)
	if _, err := h.auth.SelectShop(c.Context(), sess, req.Shop); err != nil {
		return err
	}
	return c.JSON(h.sessionState(c))
}

// Session handles GET /auth/session, the dashboard's boot call.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.sessionState(c))
}

// ChangePassword handles POST /auth/password/change for a live session.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	sess := h.resolver.Resolve(c)
	if !sess.ValidateAuthState(c.Context()) {
		return util.NewUnauthorized("not logged in")
	}
	user := sess.UserData(c.Context())
	if err := h.auth.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "password changed"})
}

// RequestPasswordReset handles POST /auth/password/reset/request.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "reset mail sent if the account exists"})
}

// ConfirmPasswordReset handles POST /auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "password reset"})
}
