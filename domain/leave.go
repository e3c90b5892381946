package domain

import (
	"context"
	"time"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveDeclined LeaveStatus = "Declined"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveDeclined:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"type:uuid;index;not null" json:"user_id"`
	StartDate string      `gorm:"not null" json:"start_date"` // YYYY-MM-DD
	EndDate   string      `gorm:"not null" json:"end_date"`
	Reason    string      `gorm:"not null" json:"reason"`
	Status    LeaveStatus `gorm:"not null;default:Pending" json:"status"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type LeaveFilter struct {
	Status *LeaveStatus
	UserID *string
}

type LeaveRepository interface {
	CreateLeave(ctx context.Context, lr *LeaveRequest) error
	GetByUser(ctx context.Context, userID string, status *LeaveStatus) ([]LeaveRequest, error)
	GetAll(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id uint) (*LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uint, status LeaveStatus) (*LeaveRequest, error)
}

type LeaveUseCase interface {
	CreateLeave(ctx context.Context, userID, startDate, endDate, reason string) (*LeaveRequest, error)
	MyRequests(ctx context.Context, userID string, status *LeaveStatus) ([]LeaveRequest, error)
	AllRequests(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uint, status LeaveStatus) (*LeaveRequest, error)
}
