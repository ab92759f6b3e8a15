package utils

import (
	"math/rand"
	"time"
)

const (
	// OTPTTL is how long a code stays valid after it is issued.
	OTPTTL = time.Hour
	// OTPResendCooldown is the minimum gap between two sends to the same address.
	OTPResendCooldown = 60 * time.Second
)

// GenerateOTP draws a 6-digit code uniformly from [100000, 999999].
func GenerateOTP() int {
	return 100000 + rand.Intn(900000)
}

// OTPExpiry returns the expiry timestamp for a code issued now.
func OTPExpiry() time.Time {
	return time.Now().Add(OTPTTL)
}
