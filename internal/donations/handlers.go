package donations

import (
	"errors"
	"time"

	"lifeflow-backend/internal/middleware"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers keep the Express donation controller's wire shapes verbatim:
// plain {message, ...} bodies, bare arrays for the list routes.
type Handlers struct {
	Service *Service
}

// POST /api/v1/donations/record — gated by VerifyBloodCenter.
func (h *Handlers) RecordDonation(c *fiber.Ctx) error {
	var body struct {
		DonorID      string `json:"donorId"`
		BloodGroup   string `json:"bloodGroup"`
		DonationDate string `json:"donationDate"`
		MedicalNotes string `json:"medicalNotes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	donorID, err := uuid.Parse(body.DonorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid donorId"})
	}
	donationDate, err := parseDate(body.DonationDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid donationDate"})
	}

	rec, err := h.Service.RecordDonation(c.Context(), RecordDonationInput{
		DonorID:      donorID,
		CenterID:     middleware.AuthenticatedCenterID(c),
		BloodGroup:   body.BloodGroup,
		DonationDate: donationDate,
		MedicalNotes: body.MedicalNotes,
	})
	if err != nil {
		if err == ErrDonorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Donor not found"})
		}
		var v validation.Violations
		if errors.As(err, &v) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": v})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error recording donation",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Donation recorded successfully",
		"donationId": rec.DonationID,
	})
}

// GET /api/v1/donations/center/:centerId — gated by VerifyBloodCenter.
func (h *Handlers) GetCenterDonations(c *fiber.Ctx) error {
	donations, err := h.Service.CenterDonations(c.Context(), c.Params("centerId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching donations",
			"error":   err.Error(),
		})
	}
	return c.JSON(donations)
}

// GET /api/v1/donations/donor/:donorId — gated by VerifyAccess.
func (h *Handlers) GetDonorDonations(c *fiber.Ctx) error {
	donorID, err := uuid.Parse(c.Params("donorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid donorId"})
	}
	donations, err := h.Service.DonorDonations(c.Context(), donorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching donor donations",
			"error":   err.Error(),
		})
	}
	return c.JSON(donations)
}

// PUT /api/v1/donations/update/:donationId — gated by VerifyBloodCenter.
func (h *Handlers) UpdateDonationStatus(c *fiber.Ctx) error {
	var body struct {
		Status       string `json:"status"`
		MedicalNotes string `json:"medicalNotes"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Status is required"})
	}

	donation, err := h.Service.UpdateStatus(c.Context(), UpdateStatusInput{
		DonationID:   c.Params("donationId"),
		CenterID:     middleware.AuthenticatedCenterID(c),
		Status:       body.Status,
		MedicalNotes: body.MedicalNotes,
	})
	if err != nil {
		if err == ErrDonationNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Donation record not found"})
		}
		var v validation.Violations
		if errors.As(err, &v) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Validation failed", "errors": v})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating donation status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Donation status updated successfully",
		"donation": donation,
	})
}

// parseDate accepts RFC 3339 or a bare date (the frontend form sends the latter).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
