package postgres

import (
	"testing"

	"github.com/msomdec/tasklist/internal/domain"
)

// Verify that *postgres.DB implements domain.Database at compile time.
var _ domain.Database = (*DB)(nil)

func TestNew_EmptyDSN(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestMigrationVersionsAscending(t *testing.T) {
	seen := make(map[int]bool)
	last := 0
	for _, m := range schemaMigrations {
		if m.version <= 0 {
			t.Fatalf("migration version %d is not positive", m.version)
		}
		if seen[m.version] {
			t.Fatalf("migration version %d declared twice", m.version)
		}
		seen[m.version] = true
		if m.version <= last {
			t.Fatalf("migration version %d out of order after %d", m.version, last)
		}
		last = m.version
		if m.up == nil {
			t.Fatalf("migration v%d has no up func", m.version)
		}
		if m.description == "" {
			t.Fatalf("migration v%d has no description", m.version)
		}
	}
}
