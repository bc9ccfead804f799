package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"defect-tracker.com/defect-tracker/internal/constants"
	dto "defect-tracker.com/defect-tracker/internal/data_models"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	model "defect-tracker.com/defect-tracker/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Project{}, &model.Defect{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func statusPtr(v constants.Status) *constants.Status { return &v }

func seedDefect(t *testing.T, db *gorm.DB, name string) *model.Defect {
	defect := &model.Defect{Name: name, Priority: 1}
	if err := db.Create(defect).Error; err != nil {
		t.Fatalf("failed to seed defect: %v", err)
	}
	return defect
}

func TestCreateInitial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "water ingress at joint 4")

	task, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{
		ExecutorID: intPtr(7),
		Investment: floatPtr(100),
	})
	if err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}

	if task.ID == 0 {
		t.Error("expected task ID to be assigned")
	}
	if !task.IsActual {
		t.Error("initial version must be actual")
	}
	if task.PublishedAt.IsZero() {
		t.Error("expected published_at to be set")
	}
	if task.DefectID != defect.ID {
		t.Errorf("expected defect id %d, got %d", defect.ID, task.DefectID)
	}
}

func TestCreateInitial_MissingDefect(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.CreateInitial(context.Background(), 4242, dto.TaskRequest{})
	if !errors.Is(err, apperrors.ErrDefectNotFound) {
		t.Errorf("expected ErrDefectNotFound, got %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("no version may exist for an absent defect, got %d", count)
	}
}

func TestCreateInitial_SecondCreateConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "cracked weld")

	if _, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{})
	if !errors.Is(err, apperrors.ErrTaskExists) {
		t.Errorf("expected ErrTaskExists, got %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Where("defect_id = ?", defect.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one version after failed double create, got %d", count)
	}
}

func TestAppendVersion_NoChainFails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.AppendVersion(context.Background(), 99, dto.TaskRequest{
		Status: statusPtr(constants.StatusInProgress),
	})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAppendVersion_CarriesForward(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "loose railing")

	first, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{
		ExecutorID: intPtr(7),
		Investment: floatPtr(100),
		Comments:   strPtr("initial survey"),
	})
	if err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}

	next, err := repo.AppendVersion(ctx, defect.ID, dto.TaskRequest{
		Status: statusPtr(constants.StatusInProgress),
	})
	if err != nil {
		t.Fatalf("failed to append version: %v", err)
	}

	if next.ID == first.ID {
		t.Error("append must insert a new row, not mutate the old one")
	}
	if next.Status != constants.StatusInProgress {
		t.Errorf("expected status %d, got %d", constants.StatusInProgress, next.Status)
	}
	if next.ExecutorID == nil || *next.ExecutorID != 7 {
		t.Errorf("executor must be carried forward, got %v", next.ExecutorID)
	}
	if next.Investment != 100 {
		t.Errorf("investment must be carried forward, got %v", next.Investment)
	}
	if next.Comments != "initial survey" {
		t.Errorf("comments must be carried forward, got %q", next.Comments)
	}
}

func TestAppendVersion_PreviousVersionRetired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "paint blistering")

	first, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{})
	if err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}

	if _, err := repo.AppendVersion(ctx, defect.ID, dto.TaskRequest{
		Comments: strPtr("repainted"),
	}); err != nil {
		t.Fatalf("failed to append version: %v", err)
	}

	var previous model.Task
	if err := db.First(&previous, "id = ?", first.ID).Error; err != nil {
		t.Fatalf("failed to reload first version: %v", err)
	}

	if previous.IsActual {
		t.Error("superseded version must not stay actual")
	}
	if previous.DefectID != first.DefectID {
		t.Error("defect_id of a stored version must never change")
	}
	if !previous.PublishedAt.Equal(first.PublishedAt) {
		t.Error("published_at of a stored version must never change")
	}

	var actual int64
	db.Model(&model.Task{}).Where("defect_id = ? AND is_actual = ?", defect.ID, true).Count(&actual)
	if actual != 1 {
		t.Errorf("expected exactly one actual version, got %d", actual)
	}
}

func TestAppendVersion_DefectIDImmutable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "corroded anchor")
	other := seedDefect(t, db, "unrelated defect")

	if _, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}

	next, err := repo.AppendVersion(ctx, defect.ID, dto.TaskRequest{
		DefectID: intPtr(other.ID),
		Comments: strPtr("attempted to move the chain"),
	})
	if err != nil {
		t.Fatalf("failed to append version: %v", err)
	}

	if next.DefectID != defect.ID {
		t.Errorf("defect id must stay %d across the chain, got %d", defect.ID, next.DefectID)
	}
}

func TestAppendVersion_RepeatedPayloadStillAppends(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "misaligned panel")

	if _, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}
	if _, err := repo.AppendVersion(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("no-op append must still create a version: %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Where("defect_id = ?", defect.ID).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 versions, got %d", count)
	}
}

func TestAppendVersion_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "contested defect")
	if _, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create initial task: %v", err)
	}

	const appendCount = 20
	var wg sync.WaitGroup
	wg.Add(appendCount)

	errs := make(chan error, appendCount)
	for i := 0; i < appendCount; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.AppendVersion(context.Background(), defect.ID, dto.TaskRequest{
				Investment: floatPtr(float64(i)),
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent append failed: %v", err)
	}

	var total, actual int64
	db.Model(&model.Task{}).Where("defect_id = ?", defect.ID).Count(&total)
	db.Model(&model.Task{}).Where("defect_id = ? AND is_actual = ?", defect.ID, true).Count(&actual)

	if total != appendCount+1 {
		t.Errorf("expected %d versions, got %d", appendCount+1, total)
	}
	if actual != 1 {
		t.Errorf("expected exactly one actual version, got %d", actual)
	}
}

func TestListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	first := seedDefect(t, db, "defect one")
	second := seedDefect(t, db, "defect two")

	if _, err := repo.CreateInitial(ctx, first.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := repo.CreateInitial(ctx, second.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := repo.AppendVersion(ctx, first.ID, dto.TaskRequest{
		Status: statusPtr(constants.StatusClosed),
	}); err != nil {
		t.Fatalf("failed to append version: %v", err)
	}

	tasks, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("failed to list active tasks: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected one active task per defect, got %d", len(tasks))
	}
	for _, task := range tasks {
		if !task.IsActual {
			t.Errorf("task %d listed as active but is_actual is false", task.ID)
		}
	}
}

func TestFindByID_EnrichesAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "leaking valve")
	project := &model.Project{Name: "North plant"}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	executor := &model.User{Name: "E. Nash", Login: "enash", PasswordHash: "x", Role: constants.RoleManager}
	if err := db.Create(executor).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	created, err := repo.CreateInitial(ctx, defect.ID, dto.TaskRequest{
		ProjectID:  intPtr(project.ID),
		ExecutorID: intPtr(executor.ID),
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	task, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}

	if task.Defect == nil || task.Defect.Name != "leaking valve" {
		t.Error("expected defect to be joined in")
	}
	if task.Project == nil || task.Project.Name != "North plant" {
		t.Error("expected project to be joined in")
	}
	if task.Executor == nil || task.Executor.Login != "enash" {
		t.Error("expected executor to be joined in")
	}
}

func TestFindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
