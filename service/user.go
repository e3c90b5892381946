package service

import (
	"context"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
)

type userService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) domain.UserUseCase {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) GetAllUsers(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	return s.repo.GetAllUsers(ctx, role)
}
