package domain

import (
	"context"
	"time"
)

type Attendance struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date      string     `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"date"` // YYYY-MM-DD
	CheckIn   time.Time  `gorm:"not null" json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TodayStatus is the summary returned by GET /api/attendance/today.
type TodayStatus struct {
	HasCheckedIn  bool        `json:"has_checked_in"`
	HasCheckedOut bool        `json:"has_checked_out"`
	Attendance    *Attendance `json:"attendance"`
}

// AttendanceFilter narrows the elevated all-records listing.
type AttendanceFilter struct {
	UserID *string
	Date   *string
	Limit  int
}

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, att *Attendance) error
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)
	SetCheckOut(ctx context.Context, id uint, at time.Time) (*Attendance, error)
	GetByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)
	GetAll(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}

type AttendanceUseCase interface {
	CheckIn(ctx context.Context, userID string) (*Attendance, error)
	CheckOut(ctx context.Context, userID string) (*Attendance, error)
	TodayStatus(ctx context.Context, userID string) (*TodayStatus, error)
	MyRecords(ctx context.Context, userID string, limit int) ([]Attendance, error)
	AllRecords(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
