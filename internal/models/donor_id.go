package models

import (
	"time"

	"github.com/google/uuid"
)

// DonorID matches the Express DonorID model (donorid.model.js): a physical or
// electronic identity card issued to a donor, valid from issueDate to
// expiryDate. The primary key is the generated cardId (e.g. "CRD5533-ABD").
type DonorID struct {
	CardID     string    `gorm:"column:card_id;primaryKey" json:"cardId"`
	DonorID    uuid.UUID `gorm:"column:donor_id;type:uuid;not null;index" json:"donorId"`
	CardType   string    `gorm:"column:card_type;type:varchar(20);not null" json:"cardType"`
	IssueDate  time.Time `gorm:"column:issue_date" json:"issueDate"`
	ExpiryDate time.Time `gorm:"column:expiry_date;not null" json:"expiryDate"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (DonorID) TableName() string {
	return "donor_id_cards"
}

// Card types (Express enum).
const (
	CardTypePhysical   = "physical"
	CardTypeElectronic = "electronic"
)
