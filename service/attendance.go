package service

import (
	"context"
	"time"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

const dateLayout = "2006-01-02"

type attendanceService struct {
	repo domain.AttendanceRepository
}

func NewAttendanceService(repo domain.AttendanceRepository) domain.AttendanceUseCase {
	return &attendanceService{repo: repo}
}

func (s *attendanceService) CheckIn(ctx context.Context, userID string) (*domain.Attendance, error) {
	now := time.Now()
	today := now.Format(dateLayout)

	existing, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	att := &domain.Attendance{
		UserID:  userID,
		Date:    today,
		CheckIn: now,
	}
	if err := s.repo.CreateAttendance(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, userID string) (*domain.Attendance, error) {
	now := time.Now()
	today := now.Format(dateLayout)

	att, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotCheckedIn
	}
	if att.CheckOut != nil {
		return nil, domain.ErrAlreadyCheckedOut
	}

	return s.repo.SetCheckOut(ctx, att.ID, now)
}

func (s *attendanceService) TodayStatus(ctx context.Context, userID string) (*domain.TodayStatus, error) {
	today := time.Now().Format(dateLayout)

	att, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	return &domain.TodayStatus{
		HasCheckedIn:  att != nil,
		HasCheckedOut: att != nil && att.CheckOut != nil,
		Attendance:    att,
	}, nil
}

func (s *attendanceService) MyRecords(ctx context.Context, userID string, limit int) ([]domain.Attendance, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.repo.GetByUser(ctx, userID, limit)
}

func (s *attendanceService) AllRecords(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return s.repo.GetAll(ctx, filter)
}
