package models

import (
	"time"

	"github.com/google/uuid"
)

// DonationRecord matches the Express DonationRecord model
// (donationrecord.model.js): one row per blood donation event. The primary
// key is the generated donationId (e.g. "DON90733-KPL"); hospitalId points at
// the receiving BloodCenter.
type DonationRecord struct {
	DonationID   string    `gorm:"column:donation_id;primaryKey" json:"donationId"`
	DonorID      uuid.UUID `gorm:"column:donor_id;type:uuid;not null;index" json:"donorId"`
	HospitalID   string    `gorm:"column:hospital_id;not null;index" json:"hospitalId"`
	BloodGroup   string    `gorm:"column:blood_group;type:varchar(3);not null" json:"bloodGroup"`
	Status       string    `gorm:"column:status;type:varchar(20);default:'Pending'" json:"status"`
	DonationDate time.Time `gorm:"column:donation_date;not null" json:"donationDate"`
	MedicalNotes string    `gorm:"column:medical_notes;type:varchar(500)" json:"medicalNotes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Donation statuses (Express enum).
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)
