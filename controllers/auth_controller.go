package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mayur-aditya-007/AyuVeda-Website/services"

	"github.com/gin-gonic/gin"
)

// OTPField accepts the code as either a JSON number or a string of
// digits, since the OTP entry cells submit a joined string.
type OTPField int

func (o *OTPField) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return errors.New("missing OTP")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("OTP must be numeric")
	}
	*o = OTPField(n)
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrResendCooldown):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotVerified),
		errors.Is(err, services.ErrInvalidOrExpiredOTP),
		errors.Is(err, services.ErrAlreadyVerified),
		errors.Is(err, services.ErrProfileIncomplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All Fields must be filled"})
		return
	}
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password do not match"})
		return
	}

	if err := services.SignupUser(input.Name, input.Email, input.Password); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered. Check your mail to verify OTP."})
}

type VerifyOTPInput struct {
	Email string    `json:"email"`
	OTP   *OTPField `json:"otp"`
}

func VerifyOTP(c *gin.Context) {
	var input VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.OTP == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing OTP or Email"})
		return
	}

	if err := services.VerifyOTP(input.Email, int(*input.OTP)); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

type ResendOTPInput struct {
	Email string `json:"email"`
}

func ResendOTP(c *gin.Context) {
	var input ResendOTPInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing Email"})
		return
	}

	if err := services.ResendOTP(input.Email); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "A new OTP has been sent to your email"})
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Signin(c *gin.Context) {
	var input SigninInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	token, user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  services.Project(user),
	})
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

func ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing Email"})
		return
	}

	if err := services.ForgotPassword(input.Email); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset code sent to your email"})
}

type ResetPasswordInput struct {
	Email           string    `json:"email"`
	OTP             *OTPField `json:"otp"`
	NewPassword     string    `json:"newPassword"`
	ConfirmPassword string    `json:"confirmPassword"`
}

func ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Email == "" || input.OTP == nil || input.NewPassword == "" || input.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All Fields must be filled"})
		return
	}
	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password do not match"})
		return
	}

	if err := services.ResetPassword(input.Email, int(*input.OTP), input.NewPassword); err != nil {
		c.JSON(statusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
