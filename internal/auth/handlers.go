package auth

import (
	"lifeflow-backend/internal/middleware"
	"lifeflow-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Centers CenterFinder
	Donors  DonorFinder
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// POST /api/v1/auth/center/login
func (h *Handlers) CenterLogin(c *fiber.Ctx) error {
	var in LoginInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}
	if h.Centers == nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	center, err := h.Centers.FindByEmailAndPassword(in.Email, in.Password)
	if err != nil {
		return loginError(c, err)
	}
	principal := middleware.Principal{
		ID:    center.CenterID,
		Name:  center.CenterName,
		Email: center.Email,
		Role:  middleware.RoleCenter,
	}
	h.establishSession(c, principal)
	return response.Success(c, "Login successful", principal)
}

// POST /api/v1/auth/donor/login
func (h *Handlers) DonorLogin(c *fiber.Ctx) error {
	var in LoginInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}
	if h.Donors == nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	donor, err := h.Donors.FindByEmailAndPassword(in.Email, in.Password)
	if err != nil {
		return loginError(c, err)
	}
	principal := middleware.Principal{
		ID:    donor.DonorID.String(),
		Name:  donor.DonorName,
		Email: donor.Email,
		Role:  middleware.RoleDonor,
	}
	h.establishSession(c, principal)
	return response.Success(c, "Login successful", principal)
}

// GET /api/v1/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	p := middleware.GetPrincipal(c)
	if p == nil {
		return response.Unauthorized(c, ErrNotAuthenticated.Error())
	}
	return response.Success(c, "Authenticated", p)
}

// DELETE /api/v1/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if sid := middleware.GetSessionID(c); sid != "" && h.Rdb != nil {
		h.Rdb.Del(c.Context(), middleware.SessionRedisPrefix+sid)
	}
	middleware.DestroySession(c)
	c.Locals("session_id", "")

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)
	return response.Success(c, "Logged out", nil)
}

func (h *Handlers) establishSession(c *fiber.Ctx, p middleware.Principal) {
	sid := middleware.RegenerateSessionID(c)
	middleware.SetPrincipal(c, p)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sid
	c.Cookie(&cookie)
}

func loginError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrEmailPasswordRequired:
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	case ErrInvalidEmail, ErrIncorrectPassword:
		return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
	case ErrAccountInactive:
		return response.Error(c, err.Error(), fiber.StatusForbidden, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}
