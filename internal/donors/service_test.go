package donors

import (
	"context"
	"testing"

	"lifeflow-backend/internal/models"
	"lifeflow-backend/internal/pkg/validation"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Donor{}))
	return &Service{DB: db}
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := setupService(t)
	donor, err := svc.Register(context.Background(), RegisterInput{
		DonorName:  "Jordan Reyes",
		Email:      "jordan@example.com",
		Password:   "donate123!",
		BloodGroup: "AB+",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, donor.DonorID)
	assert.NotEmpty(t, donor.PasswordHash)
	assert.NotEqual(t, "donate123!", donor.PasswordHash)
	assert.Nil(t, donor.LastDonationDate)
}

func TestRegister_RejectsBadBloodGroup(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		DonorName:  "Jordan Reyes",
		Email:      "jordan@example.com",
		Password:   "donate123!",
		BloodGroup: "o+",
	})
	var v validation.Violations
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "bloodGroup", v[0].Field)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupService(t)
	in := RegisterInput{DonorName: "Jordan Reyes", Email: "jordan@example.com", Password: "x1234567!", BloodGroup: "A+"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), in)
	assert.Equal(t, ErrEmailTaken, err)
}

func TestList_ActiveOnlySortedByName(t *testing.T) {
	svc := setupService(t)
	for _, in := range []RegisterInput{
		{DonorName: "Zoe Park", Email: "zoe@example.com", Password: "x1234567!", BloodGroup: "O-"},
		{DonorName: "Amir Khan", Email: "amir@example.com", Password: "x1234567!", BloodGroup: "B+"},
	} {
		_, err := svc.Register(context.Background(), in)
		require.NoError(t, err)
	}
	inactive, err := svc.Register(context.Background(), RegisterInput{
		DonorName: "Gone Donor", Email: "gone@example.com", Password: "x1234567!", BloodGroup: "A-",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DB.Model(inactive).Update("is_active", false).Error)

	donors, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.Equal(t, "Amir Khan", donors[0].DonorName)
	assert.Equal(t, "Zoe Park", donors[1].DonorName)
}

func TestGet_NotFound(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.Equal(t, ErrDonorNotFound, err)
}
