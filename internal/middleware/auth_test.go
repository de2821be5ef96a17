package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principalApp(principal map[string]interface{}, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			c.Locals("principal", principal)
		}
		return c.Next()
	})
	app.Get("/guarded/:donorId?", gate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"centerId": AuthenticatedCenterID(c)})
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) int {
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestVerifyBloodCenter_NoSession(t *testing.T) {
	app := principalApp(nil, VerifyBloodCenter())
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/guarded"))
}

func TestVerifyBloodCenter_DonorForbidden(t *testing.T) {
	app := principalApp(map[string]interface{}{
		"id": "b2a7...", "role": RoleDonor,
	}, VerifyBloodCenter())
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/guarded"))
}

func TestVerifyBloodCenter_CenterAllowed(t *testing.T) {
	app := principalApp(map[string]interface{}{
		"id": "CTR10133-AAA", "role": RoleCenter,
	}, VerifyBloodCenter())
	assert.Equal(t, fiber.StatusOK, get(t, app, "/guarded"))
}

func TestVerifyAccess_MatchingDonor(t *testing.T) {
	app := principalApp(map[string]interface{}{
		"id": "donor-1", "role": RoleDonor,
	}, VerifyAccess())
	assert.Equal(t, fiber.StatusOK, get(t, app, "/guarded/donor-1"))
}

func TestVerifyAccess_OtherDonorForbidden(t *testing.T) {
	app := principalApp(map[string]interface{}{
		"id": "donor-1", "role": RoleDonor,
	}, VerifyAccess())
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/guarded/donor-2"))
}

func TestVerifyAccess_CenterAllowed(t *testing.T) {
	app := principalApp(map[string]interface{}{
		"id": "CTR10133-AAA", "role": RoleCenter,
	}, VerifyAccess())
	assert.Equal(t, fiber.StatusOK, get(t, app, "/guarded/donor-1"))
}

func TestVerifyAccess_NoSession(t *testing.T) {
	app := principalApp(nil, VerifyAccess())
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/guarded/donor-1"))
}
