package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	model "defect-tracker.com/defect-tracker/internal/models"
)

type DefectRepository struct {
	db *gorm.DB
}

func NewDefectRepository(db *gorm.DB) *DefectRepository {
	return &DefectRepository{db: db}
}

func (r *DefectRepository) List(ctx context.Context) ([]model.Defect, error) {
	var defects []model.Defect
	err := r.db.WithContext(ctx).Order("id asc").Find(&defects).Error
	return defects, err
}

func (r *DefectRepository) FindByID(ctx context.Context, id int) (*model.Defect, error) {
	var defect model.Defect
	err := r.db.WithContext(ctx).First(&defect, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrDefectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &defect, nil
}

func (r *DefectRepository) Create(ctx context.Context, req dto.DefectRequest) (*model.Defect, error) {
	defect := &model.Defect{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Priority != nil {
		defect.Priority = *req.Priority
	}
	if err := r.db.WithContext(ctx).Create(defect).Error; err != nil {
		return nil, err
	}
	return defect, nil
}

// Update applies only the fields present in the request.
func (r *DefectRepository) Update(ctx context.Context, id int, req dto.DefectRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var defect model.Defect
		err := tx.First(&defect, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDefectNotFound
		}
		if err != nil {
			return err
		}
		if req.Name != "" {
			defect.Name = req.Name
		}
		if req.Description != "" {
			defect.Description = req.Description
		}
		if req.Priority != nil {
			defect.Priority = *req.Priority
		}
		return tx.Save(&defect).Error
	})
}

// Delete removes the defect together with its entire task history; the
// versions are meaningless without the defect they remediate.
func (r *DefectRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var defect model.Defect
		err := tx.First(&defect, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDefectNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("defect_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&defect).Error
	})
}
