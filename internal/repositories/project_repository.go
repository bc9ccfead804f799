package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	model "defect-tracker.com/defect-tracker/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Order("id asc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, req dto.ProjectRequest) (*model.Project, error) {
	project := &model.Project{Name: req.Name}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int, req dto.ProjectRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		err := tx.First(&project, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		if req.Name != "" {
			project.Name = req.Name
		}
		if req.Status != nil {
			project.Status = *req.Status
		}
		return tx.Save(&project).Error
	})
}

// Delete removes the project and every task version that references it.
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project model.Project
		err := tx.First(&project, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
