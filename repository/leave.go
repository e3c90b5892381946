package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) domain.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) CreateLeave(ctx context.Context, lr *domain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *leaveRepository) GetByUser(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) GetAll(ctx context.Context, filter domain.LeaveFilter) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	q := r.db.WithContext(ctx).Preload("User")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id uint) (*domain.LeaveRequest, error) {
	var lr domain.LeaveRequest
	if err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error; err != nil {
		if utils.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &lr, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id uint, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	if err := r.db.WithContext(ctx).Model(&domain.LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
