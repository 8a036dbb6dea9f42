package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/tasklist/internal/domain"
)

// TaskRepository persists tasks in SQLite. It holds a storage handle
// it does not own; opening and closing the handle is the caller's job.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a SQLite-backed TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db.SqlDB}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		task.Title, task.Description, now, now)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("task id: %w", err)
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	rows, err := fetchRows(ctx, r.db, `
		SELECT id, title, description, created_at, updated_at
		FROM tasks WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("select task: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	task, err := taskFromRow(rows[0])
	if err != nil {
		return nil, fmt.Errorf("select task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := fetchRows(ctx, r.db, `
		SELECT id, title, description, created_at, updated_at
		FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := taskFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("select tasks: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		task.Title, task.Description, now, task.ID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	task.UpdatedAt = now
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		return 0, fmt.Errorf("delete tasks: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete tasks: %w", err)
	}
	return n, nil
}

// taskFromRow converts one raw storage row into a typed task. It is
// the only place that knows how task columns map onto the struct.
func taskFromRow(row rawRow) (*domain.Task, error) {
	var task domain.Task
	var err error

	if task.ID, err = intColumn(row, "id"); err != nil {
		return nil, err
	}
	if task.Title, err = textColumn(row, "title"); err != nil {
		return nil, err
	}
	if task.Description, err = textColumn(row, "description"); err != nil {
		return nil, err
	}
	if task.CreatedAt, err = timeColumn(row, "created_at"); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = timeColumn(row, "updated_at"); err != nil {
		return nil, err
	}
	return &task, nil
}
