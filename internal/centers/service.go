package centers

import (
	"context"

	"lifeflow-backend/internal/auth"
	"lifeflow-backend/internal/models"
	"lifeflow-backend/internal/pkg/identifier"
	"lifeflow-backend/internal/pkg/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type RegisterInput struct {
	CenterName       string   `json:"centerName"`
	CenterType       string   `json:"centerType"`
	Location         string   `json:"location"`
	ContactNumber    string   `json:"contactNumber"`
	BloodTypesNeeded []string `json:"bloodTypesNeeded"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
}

// Register validates and creates a blood center with a generated centerId,
// regenerating on ID collision.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.BloodCenter, error) {
	center := &models.BloodCenter{
		CenterName:       in.CenterName,
		CenterType:       in.CenterType,
		Location:         in.Location,
		ContactNumber:    in.ContactNumber,
		BloodTypesNeeded: datatypes.JSONSlice[string](in.BloodTypesNeeded),
		Email:            in.Email,
		IsActive:         true,
	}
	if v := validation.ValidateBloodCenter(center); len(v) > 0 {
		return nil, v
	}

	// Email collisions would otherwise be indistinguishable from centerId
	// collisions inside the retry loop.
	var existing models.BloodCenter
	if err := s.DB.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	center.PasswordHash = hash

	if _, err := identifier.NewWithRetry(identifier.PrefixCenter, func(id string) error {
		center.CenterID = id
		return s.DB.WithContext(ctx).Create(center).Error
	}); err != nil {
		return nil, err
	}
	return center, nil
}

func (s *Service) Get(ctx context.Context, centerID string) (*models.BloodCenter, error) {
	var center models.BloodCenter
	if err := s.DB.WithContext(ctx).First(&center, "center_id = ?", centerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCenterNotFound
		}
		return nil, err
	}
	return &center, nil
}

// ListActive returns centers currently seeking donations.
func (s *Service) ListActive(ctx context.Context) ([]models.BloodCenter, error) {
	var centers []models.BloodCenter
	if err := s.DB.WithContext(ctx).Where("is_active = ?", true).Order("center_name").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

type UpdateInput struct {
	CenterName       *string   `json:"centerName"`
	Location         *string   `json:"location"`
	ContactNumber    *string   `json:"contactNumber"`
	BloodTypesNeeded *[]string `json:"bloodTypesNeeded"`
}

// Update applies the supplied fields, re-validating the whole entity before
// the write.
func (s *Service) Update(ctx context.Context, centerID string, in UpdateInput) (*models.BloodCenter, error) {
	center, err := s.Get(ctx, centerID)
	if err != nil {
		return nil, err
	}
	if in.CenterName != nil {
		center.CenterName = *in.CenterName
	}
	if in.Location != nil {
		center.Location = *in.Location
	}
	if in.ContactNumber != nil {
		center.ContactNumber = *in.ContactNumber
	}
	if in.BloodTypesNeeded != nil {
		center.BloodTypesNeeded = datatypes.JSONSlice[string](*in.BloodTypesNeeded)
	}
	if v := validation.ValidateBloodCenter(center); len(v) > 0 {
		return nil, v
	}
	if err := s.DB.WithContext(ctx).Save(center).Error; err != nil {
		return nil, err
	}
	return center, nil
}

// Deactivate soft-disables the center. Nothing is ever physically deleted.
func (s *Service) Deactivate(ctx context.Context, centerID string) (*models.BloodCenter, error) {
	center, err := s.Get(ctx, centerID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(center).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	center.IsActive = false
	return center, nil
}
