package middleware

import (
	"lifeflow-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CenterIDLocal is the Locals key under which VerifyBloodCenter injects the
// authenticated center's identifier.
const CenterIDLocal = "centerId"

// VerifyBloodCenter requires a session principal with the center role and
// injects its centerId into Locals for the handlers.
func VerifyBloodCenter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		if p.Role != RoleCenter {
			return response.Error(c, "Blood center access required", fiber.StatusForbidden, nil)
		}
		c.Locals(CenterIDLocal, p.ID)
		return c.Next()
	}
}

// VerifyAccess authorizes either the donor named by the :donorId route param
// or any authenticated blood center.
func VerifyAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		if p.Role == RoleCenter {
			c.Locals(CenterIDLocal, p.ID)
			return c.Next()
		}
		if p.Role == RoleDonor && p.ID == c.Params("donorId") {
			return c.Next()
		}
		return response.Error(c, "Access denied", fiber.StatusForbidden, nil)
	}
}

// AuthenticatedCenterID returns the centerId injected by VerifyBloodCenter.
func AuthenticatedCenterID(c *fiber.Ctx) string {
	id, _ := c.Locals(CenterIDLocal).(string)
	return id
}
