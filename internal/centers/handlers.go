package centers

import (
	"errors"

	"lifeflow-backend/internal/middleware"
	"lifeflow-backend/internal/pkg/response"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/centers/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if in.Email == "" || in.Password == "" {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest, nil)
	}
	center, err := h.Service.Register(c.Context(), in)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Blood center registered successfully", center)
}

// GET /api/v1/centers
func (h *Handlers) ListActive(c *fiber.Ctx) error {
	centers, err := h.Service.ListActive(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Blood centers fetched successfully", centers)
}

// GET /api/v1/centers/:centerId
func (h *Handlers) Get(c *fiber.Ctx) error {
	center, err := h.Service.Get(c.Context(), c.Params("centerId"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Blood center fetched successfully", center)
}

// PUT /api/v1/centers/:centerId — a center may only update itself.
func (h *Handlers) Update(c *fiber.Ctx) error {
	centerID := c.Params("centerId")
	if centerID != middleware.AuthenticatedCenterID(c) {
		return response.Error(c, "Cannot modify another blood center", fiber.StatusForbidden, nil)
	}
	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	center, err := h.Service.Update(c.Context(), centerID, in)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Blood center updated successfully", center)
}

// PATCH /api/v1/centers/:centerId/deactivate
func (h *Handlers) Deactivate(c *fiber.Ctx) error {
	centerID := c.Params("centerId")
	if centerID != middleware.AuthenticatedCenterID(c) {
		return response.Error(c, "Cannot modify another blood center", fiber.StatusForbidden, nil)
	}
	center, err := h.Service.Deactivate(c.Context(), centerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Blood center deactivated", center)
}

func serviceError(c *fiber.Ctx, err error) error {
	var v validation.Violations
	switch {
	case errors.As(err, &v):
		return response.Error(c, "Validation failed", fiber.StatusBadRequest, v)
	case err == ErrCenterNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case err == ErrEmailTaken:
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
}
