package validation

import (
	"strings"
	"testing"
	"time"

	"lifeflow-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestIsValidBloodGroup(t *testing.T) {
	for _, g := range BloodGroups {
		assert.True(t, IsValidBloodGroup(g), g)
	}
	for _, g := range []string{"A", "X+", "o+", "ab+", "", "O +", "AB"} {
		assert.False(t, IsValidBloodGroup(g), g)
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("City General Hospital"))
	assert.True(t, IsValidName("Ward 9"))
	assert.False(t, IsValidName("ab"))                       // too short
	assert.False(t, IsValidName(strings.Repeat("a", 101)))   // too long
	assert.False(t, IsValidName("St. Mary's"))               // punctuation
	assert.False(t, IsValidName(""))
}

func TestIsValidContactNumber(t *testing.T) {
	assert.True(t, IsValidContactNumber("+1 555-123-4567"))
	assert.True(t, IsValidContactNumber("0123456789"))
	assert.False(t, IsValidContactNumber("12345"))      // too short
	assert.False(t, IsValidContactNumber("555-ABC-123"))
	assert.False(t, IsValidContactNumber("++1234567890"))
}

func validCenter() *models.BloodCenter {
	return &models.BloodCenter{
		CenterName:       "Central Blood Bank",
		CenterType:       models.CenterTypeBloodBank,
		Location:         "12 Main Street",
		ContactNumber:    "+1 555 123 4567",
		BloodTypesNeeded: datatypes.JSONSlice[string]{"A+", "O-"},
		Email:            "central@example.com",
	}
}

func TestValidateBloodCenter(t *testing.T) {
	assert.Empty(t, ValidateBloodCenter(validCenter()))

	c := validCenter()
	c.CenterName = "x"
	c.CenterType = "Clinic"
	c.BloodTypesNeeded = datatypes.JSONSlice[string]{"A+", "Z-"}
	v := ValidateBloodCenter(c)
	require.Len(t, v, 3)
	fields := []string{v[0].Field, v[1].Field, v[2].Field}
	assert.Contains(t, fields, "centerName")
	assert.Contains(t, fields, "centerType")
	assert.Contains(t, fields, "bloodTypesNeeded")
}

func TestValidateDonationRecord(t *testing.T) {
	rec := &models.DonationRecord{
		DonorID:      uuid.New(),
		HospitalID:   "CTR12333-ABC",
		BloodGroup:   "AB-",
		Status:       models.StatusCompleted,
		DonationDate: time.Now(),
	}
	assert.Empty(t, ValidateDonationRecord(rec))

	rec.BloodGroup = "X+"
	rec.Status = "Done"
	rec.MedicalNotes = strings.Repeat("n", 501)
	v := ValidateDonationRecord(rec)
	require.Len(t, v, 3)
}

func TestValidateDonationRecord_MissingReferences(t *testing.T) {
	v := ValidateDonationRecord(&models.DonationRecord{
		BloodGroup: "A+",
		Status:     models.StatusPending,
	})
	fields := make([]string, 0, len(v))
	for _, viol := range v {
		fields = append(fields, viol.Field)
	}
	assert.Contains(t, fields, "donorId")
	assert.Contains(t, fields, "hospitalId")
	assert.Contains(t, fields, "donationDate")
}

func TestValidateDonorID_ExpiryAfterIssue(t *testing.T) {
	issued := time.Now()
	card := &models.DonorID{
		DonorID:    uuid.New(),
		CardType:   models.CardTypeElectronic,
		IssueDate:  issued,
		ExpiryDate: issued.AddDate(2, 0, 0),
	}
	assert.Empty(t, ValidateDonorID(card))

	card.ExpiryDate = issued.AddDate(0, 0, -1)
	v := ValidateDonorID(card)
	require.Len(t, v, 1)
	assert.Equal(t, "expiryDate", v[0].Field)
	assert.Equal(t, "Expiry date must be after issue date.", v[0].Message)
}

func TestViolations_Error(t *testing.T) {
	v := Violations{{Field: "bloodGroup", Message: "bad"}}
	assert.Contains(t, v.Error(), "bloodGroup: bad")
}
