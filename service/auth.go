package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type authService struct {
	userRepo      domain.UserRepository
	otpRepo       domain.OTPRepository
	tokenManager  *utils.JWTManager
	otpExpireMins int
}

func NewAuthService(userRepo domain.UserRepository, otpRepo domain.OTPRepository, tokenManager *utils.JWTManager, otpExpireMins int) domain.AuthUseCase {
	return &authService{
		userRepo:      userRepo,
		otpRepo:       otpRepo,
		tokenManager:  tokenManager,
		otpExpireMins: otpExpireMins,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	// Email uniqueness is enforced by the store; a duplicate surfaces as
	// domain.ErrEmailTaken from the repository.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login collapses "no such email" and "wrong password" into a single error so
// responses cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateToken(domain.AuthUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) RequestOTP(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	token := &domain.OTPToken{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: utils.OTPExpiry(time.Now(), s.otpExpireMins),
	}
	// Earlier codes stay valid until they expire or get used; a new request
	// does not invalidate them.
	if err := s.otpRepo.CreateOTP(ctx, token); err != nil {
		return "", err
	}

	// No delivery channel; the code is logged for the operator.
	log.Info().Str("email", email).Str("otp", code).Time("expires_at", token.ExpiresAt).
		Msg("OTP generated")

	return code, nil
}

func (s *authService) VerifyOTPAndChangePassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.otpRepo.FindLatestUnused(ctx, user.ID, code)
	if err != nil {
		return err
	}
	if token == nil {
		return domain.ErrInvalidOTP
	}
	if utils.IsOTPExpired(token.ExpiresAt, time.Now()) {
		return domain.ErrExpiredOTP
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.ChangePasswordWithOTP(ctx, user.ID, hashed, token.ID)
}
