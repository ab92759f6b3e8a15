package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the single account record. OTP and OTPExpires are set together
// at signup and on every forgot-password request, and cleared together on
// successful verification. IsVerified never goes back to false.
type User struct {
	gorm.Model
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	IsVerified     bool       `gorm:"default:false" json:"isVerified"`
	OTP            *int       `gorm:"column:otp" json:"-"`
	OTPExpires     *time.Time `gorm:"column:otp_expires" json:"-"`
	Gender         *string    `json:"gender"`
	DOB            *time.Time `gorm:"column:dob" json:"dob"`
	Height         *float64   `json:"height"` // cm
	Weight         *float64   `json:"weight"` // kg
	ProfilePicture string     `gorm:"default:''" json:"profilePicture"`
}
