package domain

import (
	"context"
	"time"
)

// Role is a closed set. Anything outside the three values is rejected at
// registration and at every authorization check.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleHR:
		return true
	}
	return false
}

// Elevated reports whether the role may act on other users' resources.
func (r Role) Elevated() bool {
	switch r {
	case RoleAdmin, RoleHR:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetAllUsers(ctx context.Context, role *Role) ([]User, error)
	// ChangePasswordWithOTP sets the new password hash and marks the OTP
	// token used in a single transaction.
	ChangePasswordWithOTP(ctx context.Context, userID string, passwordHash string, otpID uint) error
}

type UserUseCase interface {
	GetProfile(ctx context.Context, userID string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetAllUsers(ctx context.Context, role *Role) ([]User, error)
}
