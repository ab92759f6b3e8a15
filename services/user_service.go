package services

import (
	"errors"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/config"
	"github.com/Mayur-aditya-007/AyuVeda-Website/models"
	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"gorm.io/gorm"
)

var ErrProfileIncomplete = errors.New("Profile is missing height, weight or date of birth")

// UserProjection is the subset of a record that is safe to hand to a
// client. The hash and OTP fields never leave the service layer.
type UserProjection struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DOB            *time.Time `json:"dob"`
	Gender         *string    `json:"gender"`
	Height         *float64   `json:"height"`
	Weight         *float64   `json:"weight"`
	ProfilePicture string     `json:"profilePicture"`
}

func Project(user *models.User) UserProjection {
	return UserProjection{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		DOB:            user.DOB,
		Gender:         user.Gender,
		Height:         user.Height,
		Weight:         user.Weight,
		ProfilePicture: user.ProfilePicture,
	}
}

// ProfileInput carries the onboarding-wizard attributes. Nil fields were
// omitted by the caller and must be left untouched.
type ProfileInput struct {
	Gender *string  `json:"gender"`
	DOB    *string  `json:"dob"` // YYYY-MM-DD
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
}

// UpdateProfile merges the provided attributes into the record.
func UpdateProfile(id uint, input ProfileInput) (*UserProjection, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Gender != nil {
		updates["gender"] = *input.Gender
	}
	if input.DOB != nil {
		dob, err := time.Parse("2006-01-02", *input.DOB)
		if err != nil {
			return nil, errors.New("dob must be YYYY-MM-DD")
		}
		updates["dob"] = dob
	}
	if input.Height != nil {
		updates["height"] = *input.Height
	}
	if input.Weight != nil {
		updates["weight"] = *input.Weight
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := config.DB.First(&user, id).Error; err != nil {
			return nil, err
		}
	}

	proj := Project(&user)
	return &proj, nil
}

func GetUserByEmail(email string) (*UserProjection, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	proj := Project(&user)
	return &proj, nil
}

// SetProfilePicture stores the uploaded picture URL on the record.
func SetProfilePicture(id uint, url string) error {
	res := config.DB.Model(&models.User{}).Where("id = ?", id).
		Update("profile_picture", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// HealthSummary derives age and BMI from the stored profile attributes.
type HealthSummary struct {
	Age         int     `json:"age"`
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory"`
}

func GetHealthSummary(id uint) (*HealthSummary, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Height == nil || user.Weight == nil || user.DOB == nil {
		return nil, ErrProfileIncomplete
	}

	bmi, err := utils.CalculateBMI(*user.Height, *user.Weight)
	if err != nil {
		return nil, err
	}
	return &HealthSummary{
		Age:         utils.CalculateAge(*user.DOB),
		BMI:         bmi,
		BMICategory: utils.BMICategory(bmi),
	}, nil
}
