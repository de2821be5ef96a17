package models

import (
	"time"

	"gorm.io/datatypes"
)

// BloodCenter matches the Express BloodCenter model (bloodcenter.model.js),
// representing both hospitals and blood banks. The primary key is the
// generated human-readable centerId (e.g. "CTR42133-QXZ").
type BloodCenter struct {
	CenterID         string                       `gorm:"column:center_id;primaryKey" json:"centerId"`
	CenterName       string                       `gorm:"column:center_name;not null" json:"centerName"`
	CenterType       string                       `gorm:"column:center_type;type:varchar(20);not null" json:"centerType"`
	Location         string                       `gorm:"column:location;not null" json:"location"`
	ContactNumber    string                       `gorm:"column:contact_number;not null" json:"contactNumber"`
	BloodTypesNeeded datatypes.JSONSlice[string]  `gorm:"column:blood_types_needed" json:"bloodTypesNeeded"`
	Email            string                       `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash     string                       `gorm:"column:password_hash" json:"-"`
	IsActive         bool                         `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}

// Center types (Express enum).
const (
	CenterTypeHospital  = "Hospital"
	CenterTypeBloodBank = "Blood Bank"
)
