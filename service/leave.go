package service

import (
	"context"
	"time"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

type leaveService struct {
	repo domain.LeaveRepository
}

func NewLeaveService(repo domain.LeaveRepository) domain.LeaveUseCase {
	return &leaveService{repo: repo}
}

func (s *leaveService) CreateLeave(ctx context.Context, userID, startDate, endDate, reason string) (*domain.LeaveRequest, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, domain.ErrInvalidDateRange
	}
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	lr := &domain.LeaveRequest{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    domain.LeavePending,
	}
	if err := s.repo.CreateLeave(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

func (s *leaveService) MyRequests(ctx context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	return s.repo.GetByUser(ctx, userID, status)
}

func (s *leaveService) AllRequests(ctx context.Context, filter domain.LeaveFilter) ([]domain.LeaveRequest, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *leaveService) UpdateStatus(ctx context.Context, id uint, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
