package services

import (
	"context"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	model "defect-tracker.com/defect-tracker/internal/models"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*model.User, error) {
	return s.repo.Create(ctx, req)
}

func (s *UserService) Update(ctx context.Context, id int, req dto.UserRequest) error {
	return s.repo.Update(ctx, id, req)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
