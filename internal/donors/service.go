package donors

import (
	"context"

	"lifeflow-backend/internal/auth"
	"lifeflow-backend/internal/models"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type RegisterInput struct {
	DonorName     string `json:"donorName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	BloodGroup    string `json:"bloodGroup"`
	ContactNumber string `json:"contactNumber"`
}

// Register validates and creates a donor account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Donor, error) {
	donor := &models.Donor{
		DonorID:       uuid.New(),
		DonorName:     in.DonorName,
		Email:         in.Email,
		BloodGroup:    in.BloodGroup,
		ContactNumber: in.ContactNumber,
		IsActive:      true,
	}
	if v := validation.ValidateDonor(donor); len(v) > 0 {
		return nil, v
	}

	var existing models.Donor
	if err := s.DB.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	donor.PasswordHash = hash

	if err := s.DB.WithContext(ctx).Create(donor).Error; err != nil {
		return nil, err
	}
	return donor, nil
}

// List returns active donors, ordered by name; centers use it for donor lookup
// when recording donations.
func (s *Service) List(ctx context.Context) ([]models.Donor, error) {
	var donors []models.Donor
	if err := s.DB.WithContext(ctx).Where("is_active = ?", true).Order("donor_name").Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (s *Service) Get(ctx context.Context, donorID uuid.UUID) (*models.Donor, error) {
	var donor models.Donor
	if err := s.DB.WithContext(ctx).First(&donor, "donor_id = ?", donorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}
