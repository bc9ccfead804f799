package services

import (
	"context"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	model "defect-tracker.com/defect-tracker/internal/models"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
)

type DefectService struct {
	repo *repository.DefectRepository
}

func NewDefectService(repo *repository.DefectRepository) *DefectService {
	return &DefectService{repo: repo}
}

func (s *DefectService) List(ctx context.Context) ([]model.Defect, error) {
	return s.repo.List(ctx)
}

func (s *DefectService) GetDefect(ctx context.Context, id int) (*model.Defect, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DefectService) Create(ctx context.Context, req dto.DefectRequest) (*model.Defect, error) {
	return s.repo.Create(ctx, req)
}

func (s *DefectService) Update(ctx context.Context, id int, req dto.DefectRequest) error {
	return s.repo.Update(ctx, id, req)
}

func (s *DefectService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
