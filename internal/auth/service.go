package auth

import (
	"lifeflow-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput for login request bodies.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CenterFinder abstracts blood-center credential lookup (GORM in production,
// doubles in tests).
type CenterFinder interface {
	FindByEmailAndPassword(email, password string) (*models.BloodCenter, error)
}

// DonorFinder abstracts donor credential lookup.
type DonorFinder interface {
	FindByEmailAndPassword(email, password string) (*models.Donor, error)
}

// GormCenterFinder implements CenterFinder using GORM and bcrypt.
type GormCenterFinder struct{ DB *gorm.DB }

func (g *GormCenterFinder) FindByEmailAndPassword(email, password string) (*models.BloodCenter, error) {
	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}
	var center models.BloodCenter
	if err := g.DB.Where("email = ?", email).First(&center).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if err := verifyPassword(center.PasswordHash, password); err != nil {
		return nil, err
	}
	if !center.IsActive {
		return nil, ErrAccountInactive
	}
	return &center, nil
}

// GormDonorFinder implements DonorFinder using GORM and bcrypt.
type GormDonorFinder struct{ DB *gorm.DB }

func (g *GormDonorFinder) FindByEmailAndPassword(email, password string) (*models.Donor, error) {
	if email == "" || password == "" {
		return nil, ErrEmailPasswordRequired
	}
	var donor models.Donor
	if err := g.DB.Where("email = ?", email).First(&donor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if err := verifyPassword(donor.PasswordHash, password); err != nil {
		return nil, err
	}
	if !donor.IsActive {
		return nil, ErrAccountInactive
	}
	return &donor, nil
}

func verifyPassword(hash, password string) error {
	if hash == "" {
		return ErrInvalidEmail
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrIncorrectPassword
	}
	return nil
}

// HashPassword hashes a plaintext password for storage (registration flows).
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
