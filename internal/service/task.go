package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/tasklist/internal/domain"
)

// TaskService handles task list operations.
type TaskService struct {
	tasks domain.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create validates and stores a new task. The title is trimmed and
// must not be empty.
func (s *TaskService) Create(ctx context.Context, title, description string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTask(title, description); err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// GetByID returns a task by its ID.
func (s *TaskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// List returns all tasks in creation order.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// Update replaces both text fields of an existing task.
func (s *TaskService) Update(ctx context.Context, id int64, title, description string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if err := validateTask(title, description); err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return task, nil
}

// Delete removes a task by its ID.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

// DeleteAll removes every task and reports how many were removed.
func (s *TaskService) DeleteAll(ctx context.Context) (int64, error) {
	return s.tasks.DeleteAll(ctx)
}

// Seed resets the task list to the default entries. Existing tasks are
// removed first, so seeding twice leaves the same four tasks.
func (s *TaskService) Seed(ctx context.Context) (int, error) {
	if _, err := s.tasks.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear tasks: %w", err)
	}

	for _, seed := range seedTasks {
		task := seed
		if err := s.tasks.Create(ctx, &task); err != nil {
			return 0, fmt.Errorf("seed task %q: %w", task.Title, err)
		}
	}
	return len(seedTasks), nil
}

func validateTask(title, description string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(title) > 255 {
		return fmt.Errorf("%w: title must be 255 characters or fewer", domain.ErrInvalidInput)
	}
	if len(description) > 1000 {
		return fmt.Errorf("%w: description must be 1000 characters or fewer", domain.ErrInvalidInput)
	}
	return nil
}

var seedTasks = []domain.Task{
	{Title: "Go to the Gym", Description: "exercise is good for you"},
	{Title: "Buy groceries", Description: "milk, eggs, bread"},
	{Title: "Call the dentist", Description: "schedule a cleaning"},
	{Title: "Water the plants", Description: "the ferns are looking thirsty"},
}
