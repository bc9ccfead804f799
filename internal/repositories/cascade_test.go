package repository

import (
	"context"
	"errors"
	"testing"

	"defect-tracker.com/defect-tracker/internal/constants"
	dto "defect-tracker.com/defect-tracker/internal/data_models"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	model "defect-tracker.com/defect-tracker/internal/models"
)

func TestDeleteDefect_RemovesTaskHistory(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	defects := NewDefectRepository(db)
	ctx := context.Background()

	defect := seedDefect(t, db, "doomed defect")
	keeper := seedDefect(t, db, "surviving defect")

	if _, err := tasks.CreateInitial(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := tasks.AppendVersion(ctx, defect.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to append version: %v", err)
	}
	if _, err := tasks.CreateInitial(ctx, keeper.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := defects.Delete(ctx, defect.ID); err != nil {
		t.Fatalf("failed to delete defect: %v", err)
	}

	var orphaned int64
	db.Model(&model.Task{}).Where("defect_id = ?", defect.ID).Count(&orphaned)
	if orphaned != 0 {
		t.Errorf("expected the whole chain to be removed, %d versions remain", orphaned)
	}

	var kept int64
	db.Model(&model.Task{}).Where("defect_id = ?", keeper.ID).Count(&kept)
	if kept != 1 {
		t.Errorf("unrelated chain must survive, got %d versions", kept)
	}
}

func TestDeleteDefect_Missing(t *testing.T) {
	db := setupTestDB(t)
	defects := NewDefectRepository(db)

	err := defects.Delete(context.Background(), 4242)
	if !errors.Is(err, apperrors.ErrDefectNotFound) {
		t.Errorf("expected ErrDefectNotFound, got %v", err)
	}
}

func TestDeleteProject_RemovesReferencingVersions(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	projects := NewProjectRepository(db)
	ctx := context.Background()

	project, err := projects.Create(ctx, dto.ProjectRequest{Name: "South plant"})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	inProject := seedDefect(t, db, "defect in project")
	outside := seedDefect(t, db, "defect outside project")

	if _, err := tasks.CreateInitial(ctx, inProject.ID, dto.TaskRequest{
		ProjectID: intPtr(project.ID),
	}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := tasks.CreateInitial(ctx, outside.ID, dto.TaskRequest{}); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	var referencing int64
	db.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&referencing)
	if referencing != 0 {
		t.Errorf("expected referencing versions to be removed, %d remain", referencing)
	}

	var kept int64
	db.Model(&model.Task{}).Where("defect_id = ?", outside.ID).Count(&kept)
	if kept != 1 {
		t.Errorf("versions outside the project must survive, got %d", kept)
	}
}

func TestDeleteUser_ClearsExecutor(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	executor, err := users.Create(ctx, dto.UserRequest{
		Name:     "E. Nash",
		Login:    "enash",
		Password: "secret",
		Role:     constants.RoleManager,
	})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	defect := seedDefect(t, db, "assigned defect")
	created, err := tasks.CreateInitial(ctx, defect.ID, dto.TaskRequest{
		ExecutorID: intPtr(executor.ID),
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := users.Delete(ctx, executor.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	var task model.Task
	if err := db.First(&task, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("task must survive its executor's removal: %v", err)
	}
	if task.ExecutorID != nil {
		t.Errorf("expected executor to be cleared, got %v", *task.ExecutorID)
	}
	if !task.IsActual {
		t.Error("clearing the executor must not retire the version")
	}
}

func TestUserCreate_DuplicateLoginConflicts(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	if _, err := users.Create(ctx, dto.UserRequest{
		Name: "First", Login: "shared", Password: "pw",
	}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err := users.Create(ctx, dto.UserRequest{
		Name: "Second", Login: "shared", Password: "pw",
	})
	if !errors.Is(err, apperrors.ErrLoginTaken) {
		t.Errorf("expected ErrLoginTaken, got %v", err)
	}
}

func TestDefectUpdate_PartialFields(t *testing.T) {
	db := setupTestDB(t)
	defects := NewDefectRepository(db)
	ctx := context.Background()

	created, err := defects.Create(ctx, dto.DefectRequest{
		Name:        "original name",
		Description: "original description",
		Priority:    intPtr(3),
	})
	if err != nil {
		t.Fatalf("failed to create defect: %v", err)
	}

	if err := defects.Update(ctx, created.ID, dto.DefectRequest{
		Description: "updated description",
	}); err != nil {
		t.Fatalf("failed to update defect: %v", err)
	}

	reloaded, err := defects.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to reload defect: %v", err)
	}

	if reloaded.Name != "original name" {
		t.Errorf("omitted field must stay untouched, got %q", reloaded.Name)
	}
	if reloaded.Description != "updated description" {
		t.Errorf("supplied field must be applied, got %q", reloaded.Description)
	}
	if reloaded.Priority != 3 {
		t.Errorf("omitted priority must stay untouched, got %d", reloaded.Priority)
	}
}

func TestProjectUpdate_MissingProject(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepository(db)

	err := projects.Update(context.Background(), 41, dto.ProjectRequest{Name: "renamed"})
	if !errors.Is(err, apperrors.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
