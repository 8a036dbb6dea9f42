package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/msomdec/tasklist/internal/domain"
)

// DB wraps a PostgreSQL connection pool and hands out repositories
// bound to it. It implements domain.Database, so callers can swap it
// in for the SQLite backend without touching anything above the
// repository layer.
type DB struct {
	SqlDB *sql.DB

	tasks *TaskRepository
}

// New opens a PostgreSQL connection pool for the given DSN. The
// connection is verified with a ping before New returns.
func New(dsn string) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open database: empty dsn")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

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
	return runMigrations(ctx, db.SqlDB)
}

// Tasks returns the task repository bound to this database.
func (db *DB) Tasks() domain.TaskRepository {
	return db.tasks
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}
