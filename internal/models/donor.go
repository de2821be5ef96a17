package models

import (
	"time"

	"github.com/google/uuid"
)

// Donor matches the Express Donor model (donor.model.js).
// Donors are accounts: they can log in and view their own donation history.
type Donor struct {
	DonorID          uuid.UUID  `gorm:"column:donor_id;type:uuid;primaryKey" json:"donorId"`
	DonorName        string     `gorm:"column:donor_name;not null" json:"donorName"`
	Email            string     `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"column:password_hash" json:"-"`
	BloodGroup       string     `gorm:"column:blood_group;type:varchar(3);not null" json:"bloodGroup"`
	ContactNumber    string     `gorm:"column:contact_number" json:"contactNumber"`
	LastDonationDate *time.Time `gorm:"column:last_donation_date" json:"lastDonationDate"`
	IsActive         bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
