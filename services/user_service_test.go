package services_test

import (
	"testing"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdateProfileMergesPartialInput(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.SignupUser("Ann", "ann@x.com", "Passw0rd!"))
	user := findUser(t, "ann@x.com")

	// First pass sets everything.
	proj, err := services.UpdateProfile(user.ID, services.ProfileInput{
		Gender: strPtr("Female"),
		DOB:    strPtr("1995-05-01"),
		Height: f64Ptr(170),
		Weight: f64Ptr(65),
	})
	require.NoError(t, err)
	require.NotNil(t, proj.Height)
	assert.Equal(t, 170.0, *proj.Height)

	// Second pass touches only height; the rest must survive.
	_, err = services.UpdateProfile(user.ID, services.ProfileInput{
		Height: f64Ptr(172),
	})
	require.NoError(t, err)

	fresh := findUser(t, "ann@x.com")
	require.NotNil(t, fresh.Gender)
	assert.Equal(t, "Female", *fresh.Gender)
	require.NotNil(t, fresh.DOB)
	assert.Equal(t, "1995-05-01", fresh.DOB.Format("2006-01-02"))
	require.NotNil(t, fresh.Height)
	assert.Equal(t, 172.0, *fresh.Height)
	require.NotNil(t, fresh.Weight)
	assert.Equal(t, 65.0, *fresh.Weight)
}

func TestUpdateProfileUnknownID(t *testing.T) {
	setupTestDB(t)
	_, err := services.UpdateProfile(9999, services.ProfileInput{Height: f64Ptr(170)})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUpdateProfileBadDOB(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.SignupUser("Ann", "ann@x.com", "Passw0rd!"))
	user := findUser(t, "ann@x.com")

	_, err := services.UpdateProfile(user.ID, services.ProfileInput{DOB: strPtr("01/05/1995")})
	assert.Error(t, err)
}

func TestGetUserByEmailProjection(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.SignupUser("Ann", "ann@x.com", "Passw0rd!"))

	proj, err := services.GetUserByEmail("ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", proj.Name)
	assert.Equal(t, "ann@x.com", proj.Email)

	_, err = services.GetUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestSetProfilePicture(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.SignupUser("Ann", "ann@x.com", "Passw0rd!"))
	user := findUser(t, "ann@x.com")

	require.NoError(t, services.SetProfilePicture(user.ID, "https://cdn.example.com/p/1.jpg"))
	assert.Equal(t, "https://cdn.example.com/p/1.jpg", findUser(t, "ann@x.com").ProfilePicture)

	err := services.SetProfilePicture(9999, "https://cdn.example.com/p/2.jpg")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestGetHealthSummary(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.SignupUser("Ann", "ann@x.com", "Passw0rd!"))
	user := findUser(t, "ann@x.com")

	// Attributes missing → rejected.
	_, err := services.GetHealthSummary(user.ID)
	assert.ErrorIs(t, err, services.ErrProfileIncomplete)

	dob := time.Now().AddDate(-30, 0, 0).Format("2006-01-02")
	_, err = services.UpdateProfile(user.ID, services.ProfileInput{
		DOB:    &dob,
		Height: f64Ptr(170),
		Weight: f64Ptr(65),
	})
	require.NoError(t, err)

	summary, err := services.GetHealthSummary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, summary.Age)
	assert.InDelta(t, 65.0/(1.7*1.7), summary.BMI, 0.01)
	assert.Equal(t, "Normal weight", summary.BMICategory)
}
