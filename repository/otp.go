package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) domain.OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) CreateOTP(ctx context.Context, token *domain.OTPToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindLatestUnused ignores older duplicates; only the newest unused row with
// a matching code is eligible for consumption.
func (r *otpRepository) FindLatestUnused(ctx context.Context, userID string, code string) (*domain.OTPToken, error) {
	var token domain.OTPToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND used = ?", userID, code, false).
		Order("created_at DESC").
		First(&token).Error
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}
