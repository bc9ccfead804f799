package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	model "defect-tracker.com/defect-tracker/internal/models"
)

// TaskRepository is the only component that writes task rows. A defect's
// history is an append-only chain of versions; exactly one row per defect
// carries is_actual = true, and the only post-insert mutation ever issued
// is flipping that flag off when a newer version supersedes it.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListActive returns the current version of every defect that has a task.
func (r *TaskRepository) ListActive(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("is_actual = ?", true).
		Order("defect_id asc").
		Find(&tasks).Error
	return tasks, err
}

// FindByID returns a single version (current or historical) with its
// defect, executor and project joined in.
func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Defect").
		Preload("Executor").
		Preload("Project").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateInitial starts a defect's chain. The defect must exist, and may only
// ever have a task created once; if any version already exists the caller
// must use AppendVersion instead.
func (r *TaskRepository) CreateInitial(ctx context.Context, defectID int, req dto.TaskRequest) (*model.Task, error) {
	task := &model.Task{
		DefectID:    defectID,
		PublishedAt: time.Now().UTC(),
		IsActual:    true,
	}
	applyRequest(task, req)
	task.DefectID = defectID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var defect model.Defect
		err := tx.First(&defect, "id = ?", defectID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDefectNotFound
		}
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Task{}).
			Where("defect_id = ?", defectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrTaskExists
		}
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// AppendVersion publishes the next version of a defect's task. Fields absent
// from the request are carried forward from the current version: the request
// is a diff against the previous snapshot, not a blank record. Insert of the
// new row and retirement of the old one commit as one transaction, so no
// reader ever observes zero or two active versions for the defect.
func (r *TaskRepository) AppendVersion(ctx context.Context, defectID int, req dto.TaskRequest) (*model.Task, error) {
	var next model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Task
		err := tx.Where("defect_id = ? AND is_actual = ?", defectID, true).
			Order("published_at desc").
			Order("id desc").
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		if err != nil {
			return err
		}

		next = current
		next.ID = 0
		next.PublishedAt = time.Now().UTC()
		next.IsActual = true
		next.Defect, next.Executor, next.Project = nil, nil, nil
		applyRequest(&next, req)
		// The defect of a chain never changes, even if the request names one.
		next.DefectID = current.DefectID

		if err := tx.Create(&next).Error; err != nil {
			return err
		}
		return tx.Model(&model.Task{}).
			Where("id = ?", current.ID).
			Update("is_actual", false).Error
	})
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func applyRequest(task *model.Task, req dto.TaskRequest) {
	if req.DefectID != nil {
		task.DefectID = *req.DefectID
	}
	if req.ProjectID != nil {
		task.ProjectID = req.ProjectID
	}
	if req.ExecutorID != nil {
		task.ExecutorID = req.ExecutorID
	}
	if req.Term != nil {
		task.Term = req.Term
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Comments != nil {
		task.Comments = *req.Comments
	}
	if req.Investment != nil {
		task.Investment = *req.Investment
	}
}
