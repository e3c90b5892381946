package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, att *domain.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*domain.Attendance, error) {
	var att domain.Attendance
	err := r.db.WithContext(ctx).
		First(&att, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id uint, at time.Time) (*domain.Attendance, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Attendance{}).
		Where("id = ?", id).
		Update("check_out", at).Error; err != nil {
		return nil, err
	}

	var att domain.Attendance
	if err := r.db.WithContext(ctx).First(&att, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetByUser(ctx context.Context, userID string, limit int) ([]domain.Attendance, error) {
	var records []domain.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) GetAll(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	var records []domain.Attendance
	q := r.db.WithContext(ctx).Preload("User")
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}
	err := q.Order("date DESC, check_in DESC").
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
