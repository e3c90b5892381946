package service

import (
	"context"
	"time"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

type taskService struct {
	repo     domain.TaskRepository
	userRepo domain.UserRepository
}

func NewTaskService(repo domain.TaskRepository, userRepo domain.UserRepository) domain.TaskUseCase {
	return &taskService{repo: repo, userRepo: userRepo}
}

// CreateTask lets anyone create a task for themselves; only elevated roles
// can assign to someone else, and such tasks start in To Do instead of
// In Progress.
func (s *taskService) CreateTask(ctx context.Context, caller domain.AuthUser, title, description string, dueDate *time.Time, assignedTo string) (*domain.Task, error) {
	assignee := assignedTo
	if assignee == "" {
		assignee = caller.ID
	}

	if assignee != caller.ID && !caller.Role.Elevated() {
		return nil, domain.ErrForbidden
	}

	status := domain.TaskInProgress
	if caller.Role.Elevated() && assignee != caller.ID {
		status = domain.TaskToDo
	}

	if _, err := s.userRepo.GetUserByID(ctx, assignee); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		AssignedTo:  assignee,
		CreatedBy:   caller.ID,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasks scopes the listing by role: employees see their own tasks only,
// elevated roles see everything and may filter by assignee.
func (s *taskService) GetTasks(ctx context.Context, caller domain.AuthUser, filter domain.TaskFilter) ([]domain.Task, error) {
	if !caller.Role.Elevated() {
		filter.AssignedTo = &caller.ID
	}
	return s.repo.GetAll(ctx, filter)
}

func (s *taskService) GetTaskByID(ctx context.Context, caller domain.AuthUser, id uint) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Role.Elevated() && task.AssignedTo != caller.ID {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, caller domain.AuthUser, id uint, status domain.TaskStatus) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Role.Elevated() && task.AssignedTo != caller.ID {
		return nil, domain.ErrForbidden
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *taskService) DeleteTask(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteTask(ctx, id)
}
