package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

type fakeTaskRepo struct {
	tasks  []*domain.Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1}
}

func (f *fakeTaskRepo) CreateTask(_ context.Context, task *domain.Task) error {
	task.ID = f.nextID
	f.nextID++
	task.CreatedAt = time.Now()
	clone := *task
	f.tasks = append(f.tasks, &clone)
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id uint) (*domain.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTaskRepo) GetAll(_ context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range f.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.AssignedTo != nil && t.AssignedTo != *filter.AssignedTo {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id uint, status domain.TaskStatus) (*domain.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			t.Status = status
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTaskRepo) DeleteTask(_ context.Context, id uint) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seedTaskUsers(t *testing.T, store *fakeStore) (employee, other, hr domain.AuthUser) {
	t.Helper()
	users := []struct {
		name, email string
		role        domain.Role
	}{
		{"Worker", "worker@corp.com", domain.RoleEmployee},
		{"Other", "other@corp.com", domain.RoleEmployee},
		{"Boss", "boss@corp.com", domain.RoleHR},
	}
	var out []domain.AuthUser
	for _, u := range users {
		created := &domain.User{Name: u.name, Email: u.email, Password: "x", Role: u.role}
		require.NoError(t, store.CreateUser(context.Background(), created))
		out = append(out, domain.AuthUser{ID: created.ID, Email: created.Email, Role: created.Role})
	}
	return out[0], out[1], out[2]
}

func TestCreateTask_SelfAssignStartsInProgress(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	employee, _, _ := seedTaskUsers(t, store)

	task, err := svc.CreateTask(context.Background(), employee, "Write report", "", nil, "")
	require.NoError(t, err)

	assert.Equal(t, domain.TaskInProgress, task.Status)
	assert.Equal(t, employee.ID, task.AssignedTo)
	assert.Equal(t, employee.ID, task.CreatedBy)
}

func TestCreateTask_EmployeeCannotAssignOthers(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	employee, other, _ := seedTaskUsers(t, store)

	_, err := svc.CreateTask(context.Background(), employee, "Delegated", "", nil, other.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateTask_ElevatedAssignmentStartsToDo(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	employee, _, hr := seedTaskUsers(t, store)

	task, err := svc.CreateTask(context.Background(), hr, "Quarterly review", "", nil, employee.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TaskToDo, task.Status)
	assert.Equal(t, employee.ID, task.AssignedTo)
	assert.Equal(t, hr.ID, task.CreatedBy)
}

func TestCreateTask_UnknownAssignee(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	_, _, hr := seedTaskUsers(t, store)

	_, err := svc.CreateTask(context.Background(), hr, "Orphan task", "", nil, "no-such-user")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetTasks_EmployeeScopedToOwn(t *testing.T) {
	store := newFakeStore()
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, store)
	employee, other, hr := seedTaskUsers(t, store)

	_, err := svc.CreateTask(context.Background(), hr, "For worker", "", nil, employee.ID)
	require.NoError(t, err)
	_, err = svc.CreateTask(context.Background(), hr, "For other", "", nil, other.ID)
	require.NoError(t, err)

	mine, err := svc.GetTasks(context.Background(), employee, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, employee.ID, mine[0].AssignedTo)

	all, err := svc.GetTasks(context.Background(), hr, domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatus_OwnershipEnforced(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	employee, other, hr := seedTaskUsers(t, store)

	task, err := svc.CreateTask(context.Background(), hr, "For worker", "", nil, employee.ID)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), other, task.ID, domain.TaskDone)
	require.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := svc.UpdateStatus(context.Background(), employee, task.ID, domain.TaskDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, updated.Status)
}

func TestGetTaskByID_OwnershipEnforced(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(newFakeTaskRepo(), store)
	employee, other, hr := seedTaskUsers(t, store)

	task, err := svc.CreateTask(context.Background(), hr, "For worker", "", nil, employee.ID)
	require.NoError(t, err)

	_, err = svc.GetTaskByID(context.Background(), other, task.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := svc.GetTaskByID(context.Background(), employee, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

func TestDeleteTask(t *testing.T) {
	store := newFakeStore()
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, store)
	employee, _, hr := seedTaskUsers(t, store)

	task, err := svc.CreateTask(context.Background(), hr, "Disposable", "", nil, employee.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(context.Background(), task.ID))
	require.ErrorIs(t, svc.DeleteTask(context.Background(), task.ID), domain.ErrNotFound)
}
