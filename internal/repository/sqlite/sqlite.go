package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msomdec/tasklist/internal/domain"
	"github.com/msomdec/tasklist/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection pool and hands out repositories bound
// to it. It implements domain.Database. DB does not run migrations on
// open; callers decide when Migrate runs.
type DB struct {
	SqlDB *sql.DB

	tasks *TaskRepository
}

// New opens (creating if necessary) the SQLite database file at path
// and configures it for use: WAL journaling, foreign key enforcement,
// a busy timeout, and a single-connection pool.
func New(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open database: empty path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(context.Background(), pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	// SQLite allows a single writer; one open connection keeps
	// database/sql from piling up on a locked file.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.tasks = NewTaskRepository(db)
	return db, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Tasks returns the task repository bound to this database.
func (db *DB) Tasks() domain.TaskRepository {
	return db.tasks
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}
