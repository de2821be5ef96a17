package cards

import (
	"context"
	"time"

	"lifeflow-backend/internal/models"
	"lifeflow-backend/internal/pkg/identifier"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultValidityYears is how long a card stays valid when no expiry is
// supplied (Express pre-save hook: issue date + 2 years).
const defaultValidityYears = 2

type Service struct {
	DB *gorm.DB
}

type IssueInput struct {
	DonorID    uuid.UUID
	CardType   string
	IssueDate  time.Time // zero means now
	ExpiryDate time.Time // zero means issue + 2 years
}

// Issue creates an identity card for an existing donor. IssueDate defaults to
// now and ExpiryDate to issue + 2 years before validation runs, so the
// expiry-after-issue invariant always holds for stored cards.
func (s *Service) Issue(ctx context.Context, in IssueInput) (*models.DonorID, error) {
	var donor models.Donor
	if err := s.DB.WithContext(ctx).First(&donor, "donor_id = ?", in.DonorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	card := &models.DonorID{
		DonorID:    in.DonorID,
		CardType:   in.CardType,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		IsActive:   true,
	}
	if card.IssueDate.IsZero() {
		card.IssueDate = time.Now()
	}
	if card.ExpiryDate.IsZero() {
		card.ExpiryDate = card.IssueDate.AddDate(defaultValidityYears, 0, 0)
	}
	if v := validation.ValidateDonorID(card); len(v) > 0 {
		return nil, v
	}

	if _, err := identifier.NewWithRetry(identifier.PrefixCard, func(id string) error {
		card.CardID = id
		return s.DB.WithContext(ctx).Create(card).Error
	}); err != nil {
		return nil, err
	}
	return card, nil
}

// DonorCards returns a donor's cards, newest issue first.
func (s *Service) DonorCards(ctx context.Context, donorID uuid.UUID) ([]models.DonorID, error) {
	var cards []models.DonorID
	if err := s.DB.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("issue_date DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Deactivate soft-disables a card (lost/replaced); cards are never deleted.
func (s *Service) Deactivate(ctx context.Context, cardID string) (*models.DonorID, error) {
	var card models.DonorID
	if err := s.DB.WithContext(ctx).First(&card, "card_id = ?", cardID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&card).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	card.IsActive = false
	return &card, nil
}
