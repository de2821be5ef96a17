package donors

import (
	"errors"

	"lifeflow-backend/internal/pkg/response"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/donors/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if in.Email == "" || in.Password == "" {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest, nil)
	}
	donor, err := h.Service.Register(c.Context(), in)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Donor registered successfully", donor)
}

// GET /api/v1/donors — gated by VerifyBloodCenter (donor lookup for staff).
func (h *Handlers) List(c *fiber.Ctx) error {
	donors, err := h.Service.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Donors fetched successfully", donors)
}

// GET /api/v1/donors/:donorId — gated by VerifyAccess.
func (h *Handlers) Get(c *fiber.Ctx) error {
	donorID, err := uuid.Parse(c.Params("donorId"))
	if err != nil {
		return response.Error(c, "Invalid donorId", fiber.StatusBadRequest, nil)
	}
	donor, err := h.Service.Get(c.Context(), donorID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Donor fetched successfully", donor)
}

func serviceError(c *fiber.Ctx, err error) error {
	var v validation.Violations
	switch {
	case errors.As(err, &v):
		return response.Error(c, "Validation failed", fiber.StatusBadRequest, v)
	case err == ErrDonorNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case err == ErrEmailTaken:
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
}
