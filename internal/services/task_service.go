package services

import (
	"context"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	model "defect-tracker.com/defect-tracker/internal/models"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
)

// TaskService fronts the task ledger. The versioning rules live in the
// repository; the service is the seam handlers talk to.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) ListActive(ctx context.Context) ([]model.Task, error) {
	return s.repo.ListActive(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) CreateInitial(ctx context.Context, defectID int, req dto.TaskRequest) (*model.Task, error) {
	return s.repo.CreateInitial(ctx, defectID, req)
}

func (s *TaskService) AppendVersion(ctx context.Context, defectID int, req dto.TaskRequest) (*model.Task, error) {
	return s.repo.AppendVersion(ctx, defectID, req)
}
