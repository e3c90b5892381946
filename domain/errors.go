package domain

import "errors"

// Sentinel errors for every failure the services can signal. Handlers map
// them to HTTP statuses with errors.Is; anything unmatched becomes a 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be employee, admin, or hr")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrExpiredOTP         = errors.New("OTP has expired")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("access denied")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotCheckedIn       = errors.New("not checked in today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrInvalidDateRange   = errors.New("start date must be before or equal to end date")
)
