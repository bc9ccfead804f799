package services

import (
	"context"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	model "defect-tracker.com/defect-tracker/internal/models"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id int) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, req dto.ProjectRequest) (*model.Project, error) {
	return s.repo.Create(ctx, req)
}

func (s *ProjectService) Update(ctx context.Context, id int, req dto.ProjectRequest) error {
	return s.repo.Update(ctx, id, req)
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
