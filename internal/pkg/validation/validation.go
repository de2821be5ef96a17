package validation

import (
	"fmt"
	"regexp"
	"strings"

	"lifeflow-backend/internal/models"

	"github.com/google/uuid"
)

// Name: alphanumeric + spaces, 3-100 chars (Express centerName validator).
var nameRe = regexp.MustCompile(`^[A-Za-z0-9\s]+$`)

// Contact: optional leading +, then at least 10 digits/spaces/hyphens.
var contactRe = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

// BloodGroups is the canonical 8-code set.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

const maxMedicalNotesLen = 500

// Violation is one field-scoped validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the error returned by entity validators. Empty means valid.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, viol := range v {
		msgs[i] = viol.Field + ": " + viol.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func IsValidName(name string) bool {
	return len(name) >= 3 && len(name) <= 100 && nameRe.MatchString(name)
}

func IsValidContactNumber(number string) bool {
	return contactRe.MatchString(number)
}

func IsValidBloodGroup(group string) bool {
	for _, g := range BloodGroups {
		if g == group {
			return true
		}
	}
	return false
}

var bloodGroupMessage = fmt.Sprintf("Invalid blood group. Must be one of: %s", strings.Join(BloodGroups, ", "))

// ValidateBloodCenter checks the whole candidate center and returns every
// violation found. Runs on create and update, before any write.
func ValidateBloodCenter(c *models.BloodCenter) Violations {
	var v Violations
	if !IsValidName(c.CenterName) {
		v = append(v, Violation{"centerName", "Invalid name format. Center name should be between 3 and 100 characters."})
	}
	if c.CenterType != models.CenterTypeHospital && c.CenterType != models.CenterTypeBloodBank {
		v = append(v, Violation{"centerType", "Center type must be Hospital or Blood Bank."})
	}
	if c.Location == "" {
		v = append(v, Violation{"location", "Location is required."})
	}
	if !IsValidContactNumber(c.ContactNumber) {
		v = append(v, Violation{"contactNumber", "Invalid contact number format."})
	}
	for _, g := range c.BloodTypesNeeded {
		if !IsValidBloodGroup(g) {
			v = append(v, Violation{"bloodTypesNeeded", bloodGroupMessage})
			break
		}
	}
	return v
}

// ValidateDonationRecord checks the candidate record before persistence.
func ValidateDonationRecord(r *models.DonationRecord) Violations {
	var v Violations
	if r.DonorID == uuid.Nil {
		v = append(v, Violation{"donorId", "Donor reference is required."})
	}
	if r.HospitalID == "" {
		v = append(v, Violation{"hospitalId", "Blood center reference is required."})
	}
	if !IsValidBloodGroup(r.BloodGroup) {
		v = append(v, Violation{"bloodGroup", bloodGroupMessage})
	}
	switch r.Status {
	case models.StatusPending, models.StatusCompleted, models.StatusRejected, models.StatusCancelled:
	default:
		v = append(v, Violation{"status", "Status must be one of: Pending, Completed, Rejected, Cancelled."})
	}
	if r.DonationDate.IsZero() {
		v = append(v, Violation{"donationDate", "Donation date is required."})
	}
	if len(r.MedicalNotes) > maxMedicalNotesLen {
		v = append(v, Violation{"medicalNotes", "Medical notes must be at most 500 characters."})
	}
	return v
}

// ValidateDonorID checks a candidate identity card. ExpiryDate must already
// be defaulted by the caller; expiry-after-issue is the cross-field check.
func ValidateDonorID(card *models.DonorID) Violations {
	var v Violations
	if card.DonorID == uuid.Nil {
		v = append(v, Violation{"donorId", "Donor reference is required."})
	}
	if card.CardType != models.CardTypePhysical && card.CardType != models.CardTypeElectronic {
		v = append(v, Violation{"cardType", "Card type must be physical or electronic."})
	}
	if card.ExpiryDate.IsZero() {
		v = append(v, Violation{"expiryDate", "Expiry date is required."})
	} else if !card.ExpiryDate.After(card.IssueDate) {
		v = append(v, Violation{"expiryDate", "Expiry date must be after issue date."})
	}
	return v
}

// ValidateDonor checks a candidate donor account.
func ValidateDonor(d *models.Donor) Violations {
	var v Violations
	if !IsValidName(d.DonorName) {
		v = append(v, Violation{"donorName", "Invalid name format. Donor name should be between 3 and 100 characters."})
	}
	if d.Email == "" {
		v = append(v, Violation{"email", "Email is required."})
	}
	if !IsValidBloodGroup(d.BloodGroup) {
		v = append(v, Violation{"bloodGroup", bloodGroupMessage})
	}
	if d.ContactNumber != "" && !IsValidContactNumber(d.ContactNumber) {
		v = append(v, Violation{"contactNumber", "Invalid contact number format."})
	}
	return v
}
