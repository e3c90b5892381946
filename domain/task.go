package domain

import (
	"context"
	"time"
)

type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `gorm:"not null" json:"status"`
	AssignedTo  string     `gorm:"type:uuid;index;not null" json:"assigned_to"`
	CreatedBy   string     `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	Creator  *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

type TaskFilter struct {
	Status     *TaskStatus
	AssignedTo *string
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uint) (*Task, error)
	GetAll(ctx context.Context, filter TaskFilter) ([]Task, error)
	UpdateStatus(ctx context.Context, id uint, status TaskStatus) (*Task, error)
	DeleteTask(ctx context.Context, id uint) error
}

type TaskUseCase interface {
	CreateTask(ctx context.Context, caller AuthUser, title, description string, dueDate *time.Time, assignedTo string) (*Task, error)
	GetTasks(ctx context.Context, caller AuthUser, filter TaskFilter) ([]Task, error)
	GetTaskByID(ctx context.Context, caller AuthUser, id uint) (*Task, error)
	UpdateStatus(ctx context.Context, caller AuthUser, id uint, status TaskStatus) (*Task, error)
	DeleteTask(ctx context.Context, id uint) error
}
