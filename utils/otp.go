package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

var otpMax = big.NewInt(1000000)

// GenerateOTP returns a uniformly random 6-digit code, leading zeros kept.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPExpiry returns the absolute expiry timestamp for a code issued at now.
func OTPExpiry(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

// IsOTPExpired is strict: a code is still valid at exactly expiresAt.
func IsOTPExpired(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}
