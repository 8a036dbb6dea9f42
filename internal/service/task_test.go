package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/repository/sqlite"
	"github.com/msomdec/tasklist/internal/service"
)

func newTestTaskService(t *testing.T) *service.TaskService {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return service.NewTaskService(sqlite.NewTaskRepository(db))
}

func TestTaskService_Create(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, "Go to the Gym", "exercise is good for you")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if task.ID <= 0 {
		t.Fatalf("expected positive task ID, got %d", task.ID)
	}
	if task.Title != "Go to the Gym" {
		t.Fatalf("expected title %q, got %q", "Go to the Gym", task.Title)
	}
	if task.Description != "exercise is good for you" {
		t.Fatalf("expected description %q, got %q", "exercise is good for you", task.Description)
	}
}

func TestTaskService_Create_TrimsTitle(t *testing.T) {
	svc := newTestTaskService(t)

	task, err := svc.Create(context.Background(), "  tidy the desk  ", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Title != "tidy the desk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
}

func TestTaskService_Create_EmptyTitle(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, title, "whatever")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("title %q: expected ErrInvalidInput, got %v", title, err)
		}
	}
}

func TestTaskService_Create_TitleTooLong(t *testing.T) {
	svc := newTestTaskService(t)

	_, err := svc.Create(context.Background(), strings.Repeat("x", 256), "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskService_Create_DescriptionTooLong(t *testing.T) {
	svc := newTestTaskService(t)

	_, err := svc.Create(context.Background(), "fine title", strings.Repeat("x", 1001))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTaskService_Update(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, "old title", "old description")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, task.ID, "new title", "new description")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "new title" || updated.Description != "new description" {
		t.Fatalf("expected updated fields, got title=%q description=%q", updated.Title, updated.Description)
	}

	found, err := svc.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != "new title" {
		t.Fatalf("update not persisted, got title %q", found.Title)
	}
}

func TestTaskService_Update_NotFound(t *testing.T) {
	svc := newTestTaskService(t)

	_, err := svc.Update(context.Background(), 99999, "title", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskService_Update_InvalidTitle(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, "keep me", "original")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, task.ID, "   ", "changed")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// The stored task is unchanged after the rejected update.
	found, err := svc.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != "keep me" || found.Description != "original" {
		t.Fatalf("task changed after invalid update: title=%q description=%q", found.Title, found.Description)
	}
}

func TestTaskService_Delete(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, "short lived", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svc.GetByID(ctx, task.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTaskService_Seed(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	n, err := svc.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 seeded tasks, got %d", n)
	}

	tasks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks after seed, got %d", len(tasks))
	}

	// The gym task is always present after seeding.
	var gym *domain.Task
	for i := range tasks {
		if tasks[i].Title == "Go to the Gym" {
			gym = &tasks[i]
			break
		}
	}
	if gym == nil {
		t.Fatal("expected a task titled \"Go to the Gym\"")
	}
	if gym.ID <= 0 {
		t.Fatalf("expected positive id, got %d", gym.ID)
	}
	if gym.Description != "exercise is good for you" {
		t.Fatalf("expected description %q, got %q", "exercise is good for you", gym.Description)
	}
}

func TestTaskService_Seed_ResetsExisting(t *testing.T) {
	svc := newTestTaskService(t)
	ctx := context.Background()

	// Seed on top of existing data replaces it.
	if _, err := svc.Create(ctx, "leftover", "from before"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	tasks, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected exactly 4 tasks after reseeding, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Title == "leftover" {
			t.Fatal("expected pre-seed task to be removed")
		}
	}
}
