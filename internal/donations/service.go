package donations

import (
	"context"
	"time"

	"lifeflow-backend/internal/models"
	"lifeflow-backend/internal/pkg/identifier"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service implements the donation workflow. InitialStatus is the status given
// to newly recorded donations (Pending or Completed, from config); empty
// defaults to Completed, matching the Express controller.
type Service struct {
	DB            *gorm.DB
	InitialStatus string
}

type RecordDonationInput struct {
	DonorID      uuid.UUID
	CenterID     string
	BloodGroup   string
	DonationDate time.Time
	MedicalNotes string
}

// RecordDonation verifies the donor exists, creates the donation record, then
// updates the donor's lastDonationDate. The two writes are independent and
// non-transactional: a crash after the record save leaves lastDonationDate
// stale. Concurrent records for one donor race last-write-wins on that field.
func (s *Service) RecordDonation(ctx context.Context, in RecordDonationInput) (*models.DonationRecord, error) {
	var donor models.Donor
	if err := s.DB.WithContext(ctx).First(&donor, "donor_id = ?", in.DonorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	status := s.InitialStatus
	if status == "" {
		status = models.StatusCompleted
	}
	rec := &models.DonationRecord{
		DonorID:      in.DonorID,
		HospitalID:   in.CenterID,
		BloodGroup:   in.BloodGroup,
		Status:       status,
		DonationDate: in.DonationDate,
		MedicalNotes: in.MedicalNotes,
	}
	if v := validation.ValidateDonationRecord(rec); len(v) > 0 {
		return nil, v
	}

	if _, err := identifier.NewWithRetry(identifier.PrefixDonation, func(id string) error {
		rec.DonationID = id
		return s.DB.WithContext(ctx).Create(rec).Error
	}); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(&donor).Update("last_donation_date", in.DonationDate).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// CenterDonation is a donation record enriched with donor details
// (Express populate('donorId', 'donorName bloodGroup')).
type CenterDonation struct {
	models.DonationRecord
	DonorName       string `json:"donorName"`
	DonorBloodGroup string `json:"donorBloodGroup"`
}

// CenterDonations returns all records for a center, most recent first.
func (s *Service) CenterDonations(ctx context.Context, centerID string) ([]CenterDonation, error) {
	var recs []models.DonationRecord
	if err := s.DB.WithContext(ctx).
		Where("hospital_id = ?", centerID).
		Order("donation_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}

	donorIDs := make([]uuid.UUID, 0, len(recs))
	seen := make(map[uuid.UUID]bool)
	for _, r := range recs {
		if !seen[r.DonorID] {
			seen[r.DonorID] = true
			donorIDs = append(donorIDs, r.DonorID)
		}
	}
	donorsByID := make(map[uuid.UUID]models.Donor, len(donorIDs))
	if len(donorIDs) > 0 {
		var donors []models.Donor
		if err := s.DB.WithContext(ctx).Where("donor_id IN ?", donorIDs).Find(&donors).Error; err != nil {
			return nil, err
		}
		for _, d := range donors {
			donorsByID[d.DonorID] = d
		}
	}

	out := make([]CenterDonation, len(recs))
	for i, r := range recs {
		d := donorsByID[r.DonorID]
		out[i] = CenterDonation{
			DonationRecord:  r,
			DonorName:       d.DonorName,
			DonorBloodGroup: d.BloodGroup,
		}
	}
	return out, nil
}

// DonorDonation is a donation record enriched with the issuing center's name
// (Express populate('hospitalId', 'centerName')).
type DonorDonation struct {
	models.DonationRecord
	CenterName string `json:"centerName"`
}

// DonorDonations returns a donor's donation history, most recent first.
func (s *Service) DonorDonations(ctx context.Context, donorID uuid.UUID) ([]DonorDonation, error) {
	var recs []models.DonationRecord
	if err := s.DB.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("donation_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}

	centerIDs := make([]string, 0, len(recs))
	seen := make(map[string]bool)
	for _, r := range recs {
		if !seen[r.HospitalID] {
			seen[r.HospitalID] = true
			centerIDs = append(centerIDs, r.HospitalID)
		}
	}
	centersByID := make(map[string]models.BloodCenter, len(centerIDs))
	if len(centerIDs) > 0 {
		var centers []models.BloodCenter
		if err := s.DB.WithContext(ctx).Where("center_id IN ?", centerIDs).Find(&centers).Error; err != nil {
			return nil, err
		}
		for _, c := range centers {
			centersByID[c.CenterID] = c
		}
	}

	out := make([]DonorDonation, len(recs))
	for i, r := range recs {
		out[i] = DonorDonation{
			DonationRecord: r,
			CenterName:     centersByID[r.HospitalID].CenterName,
		}
	}
	return out, nil
}

type UpdateStatusInput struct {
	DonationID   string
	CenterID     string
	Status       string
	MedicalNotes string
}

// UpdateStatus updates a donation's status. The record must belong to the
// authenticated center; a donationId owned by another center is NotFound, so
// cross-tenant probing and mutation look identical to a missing record.
// Status is overwritten unconditionally; notes only when a non-empty value is
// supplied.
func (s *Service) UpdateStatus(ctx context.Context, in UpdateStatusInput) (*models.DonationRecord, error) {
	var rec models.DonationRecord
	if err := s.DB.WithContext(ctx).
		Where("donation_id = ? AND hospital_id = ?", in.DonationID, in.CenterID).
		First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	rec.Status = in.Status
	if in.MedicalNotes != "" {
		rec.MedicalNotes = in.MedicalNotes
	}
	if v := validation.ValidateDonationRecord(&rec); len(v) > 0 {
		return nil, v
	}

	if err := s.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
