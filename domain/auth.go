// domain/auth.go
package domain

import "context"

// AuthUser is the identity the middleware attaches to the request context
// after a token verifies. It is a snapshot of the user at token issuance.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string, role Role) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	// RequestOTP persists a fresh code and returns it so the caller can log
	// it (and echo it in development mode). Delivery is out of scope.
	RequestOTP(ctx context.Context, email string) (string, error)
	VerifyOTPAndChangePassword(ctx context.Context, email, code, newPassword string) error
}
