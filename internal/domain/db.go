package domain

import "context"

// Database is the contract a storage backend fulfills: lifecycle
// operations plus access to the repositories it hosts. Each
// implementation (SQLite, Postgres, etc.) owns its own migration
// files and strategy, so the entire backend is swappable without
// touching callers.
type Database interface {
	Migrate(ctx context.Context) error
	Tasks() TaskRepository
	Close() error
}
