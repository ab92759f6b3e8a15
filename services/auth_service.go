package services

import (
	"errors"
	"time"

	"github.com/Mayur-aditya-007/AyuVeda-Website/config"
	"github.com/Mayur-aditya-007/AyuVeda-Website/models"
	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("User not Found")
	ErrEmailTaken          = errors.New("Email already registered")
	ErrInvalidCredentials  = errors.New("Invalid Credentials")
	ErrNotVerified         = errors.New("User is not verified")
	ErrInvalidOrExpiredOTP = errors.New("Invalid or expired OTP")
	ErrAlreadyVerified     = errors.New("Email already verified")
	ErrResendCooldown      = errors.New("Please wait before requesting another code")
)

// SignupUser creates an unverified record with a fresh OTP and mails the
// code. The OTP never appears in any response payload.
func SignupUser(name, email, password string) error {
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	code := utils.GenerateOTP()
	expires := utils.OTPExpiry()

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		IsVerified:   false,
		OTP:          &code,
		OTPExpires:   &expires,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	return utils.SendOTPEmail(email, code)
}

// VerifyOTP flips the record to verified and clears the code in a single
// conditional update, so a racing second submit of the same code loses.
func VerifyOTP(email string, code int) error {
	res := config.DB.Model(&models.User{}).
		Where("email = ? AND otp = ? AND otp_expires > ?", email, code, time.Now()).
		Updates(map[string]interface{}{
			"is_verified": true,
			"otp":         nil,
			"otp_expires": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return ErrInvalidOrExpiredOTP
}

// ResendOTP rotates the code for an unverified record, at most once per
// cooldown window.
func ResendOTP(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	if user.OTPExpires != nil && time.Until(*user.OTPExpires) > utils.OTPTTL-utils.OTPResendCooldown {
		return ErrResendCooldown
	}

	code := utils.GenerateOTP()
	expires := utils.OTPExpiry()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":         code,
		"otp_expires": expires,
	}).Error; err != nil {
		return err
	}

	return utils.SendOTPEmail(email, code)
}

// AuthenticateUser checks credentials and verification state, then mints
// a one-hour bearer token. Nothing is persisted.
func AuthenticateUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return "", nil, ErrNotVerified
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// ForgotPassword rotates the OTP on the record and mails the reset code.
// It works for unverified accounts too.
func ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code := utils.GenerateOTP()
	expires := utils.OTPExpiry()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"otp":         code,
		"otp_expires": expires,
	}).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(email, code)
}

// ResetPassword swaps in a new hash when the submitted code is current.
// The code check and the password write happen in one conditional update.
func ResetPassword(email string, code int, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	res := config.DB.Model(&models.User{}).
		Where("email = ? AND otp = ? AND otp_expires > ?", email, code, time.Now()).
		Updates(map[string]interface{}{
			"password_hash": hashed,
			"otp":           nil,
			"otp_expires":   nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return ErrInvalidOrExpiredOTP
}
