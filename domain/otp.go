// domain/otp.go
package domain

import (
	"context"
	"time"
)

// OTPToken rows are never deleted; Used flips false->true exactly once so the
// table doubles as an audit trail. Several unused codes may exist for the same
// user at the same time.
type OTPToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type OTPRepository interface {
	CreateOTP(ctx context.Context, token *OTPToken) error
	// FindLatestUnused returns the most recently created unused token with
	// the given code, or nil when none matches.
	FindLatestUnused(ctx context.Context, userID string, code string) (*OTPToken, error)
}
