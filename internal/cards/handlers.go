package cards

import (
	"errors"
	"time"

	"lifeflow-backend/internal/pkg/response"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/cards — gated by VerifyBloodCenter (cards are issued by staff).
func (h *Handlers) Issue(c *fiber.Ctx) error {
	var body struct {
		DonorID    string `json:"donorId"`
		CardType   string `json:"cardType"`
		IssueDate  string `json:"issueDate"`
		ExpiryDate string `json:"expiryDate"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	donorID, err := uuid.Parse(body.DonorID)
	if err != nil {
		return response.Error(c, "Invalid donorId", fiber.StatusBadRequest, nil)
	}
	in := IssueInput{DonorID: donorID, CardType: body.CardType}
	if body.IssueDate != "" {
		if in.IssueDate, err = parseDate(body.IssueDate); err != nil {
			return response.Error(c, "Invalid issueDate", fiber.StatusBadRequest, nil)
		}
	}
	if body.ExpiryDate != "" {
		if in.ExpiryDate, err = parseDate(body.ExpiryDate); err != nil {
			return response.Error(c, "Invalid expiryDate", fiber.StatusBadRequest, nil)
		}
	}

	card, err := h.Service.Issue(c.Context(), in)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Donor ID card issued successfully", card)
}

// GET /api/v1/cards/donor/:donorId — gated by VerifyAccess.
func (h *Handlers) DonorCards(c *fiber.Ctx) error {
	donorID, err := uuid.Parse(c.Params("donorId"))
	if err != nil {
		return response.Error(c, "Invalid donorId", fiber.StatusBadRequest, nil)
	}
	cards, err := h.Service.DonorCards(c.Context(), donorID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Donor ID cards fetched successfully", cards)
}

// PATCH /api/v1/cards/:cardId/deactivate — gated by VerifyBloodCenter.
func (h *Handlers) Deactivate(c *fiber.Ctx) error {
	card, err := h.Service.Deactivate(c.Context(), c.Params("cardId"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Donor ID card deactivated", card)
}

func serviceError(c *fiber.Ctx, err error) error {
	var v validation.Violations
	switch {
	case errors.As(err, &v):
		return response.Error(c, "Validation failed", fiber.StatusBadRequest, v)
	case err == ErrDonorNotFound, err == ErrCardNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
