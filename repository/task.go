package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Creator").
		First(&task, "id = ?", id).Error
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetAll(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	var tasks []domain.Task
	q := r.db.WithContext(ctx).Preload("Assignee").Preload("Creator")
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id uint, status domain.TaskStatus) (*domain.Task, error) {
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *taskRepository) DeleteTask(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}
