package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"
)

// newProbeDB opens a throwaway in-memory database with its own scratch
// table, so the fetch helpers are tested without the tasks schema.
func newProbeDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(context.Background(), `
		CREATE TABLE probe (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note TEXT,
			stamp DATETIME
		)`)
	if err != nil {
		t.Fatalf("create probe table: %v", err)
	}
	return db
}

func TestFetchRows(t *testing.T) {
	db := newProbeDB(t)
	ctx := context.Background()

	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if _, err := db.ExecContext(ctx,
		`INSERT INTO probe (note, stamp) VALUES (?, ?)`, "first", stamp); err != nil {
		t.Fatalf("insert first: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO probe (note, stamp) VALUES (?, ?)`, "second", stamp.Add(time.Hour)); err != nil {
		t.Fatalf("insert second: %v", err)
	}

	rows, err := fetchRows(ctx, db, `SELECT id, note, stamp FROM probe ORDER BY id`)
	if err != nil {
		t.Fatalf("fetchRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Each row is keyed by column name, typed as the driver returned it.
	id, err := intColumn(rows[0], "id")
	if err != nil {
		t.Fatalf("intColumn: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}

	note, err := textColumn(rows[0], "note")
	if err != nil {
		t.Fatalf("textColumn: %v", err)
	}
	if note != "first" {
		t.Fatalf("expected note %q, got %q", "first", note)
	}

	got, err := timeColumn(rows[0], "stamp")
	if err != nil {
		t.Fatalf("timeColumn: %v", err)
	}
	if !got.Equal(stamp) {
		t.Fatalf("expected stamp %v, got %v", stamp, got)
	}
}

func TestFetchRows_Empty(t *testing.T) {
	db := newProbeDB(t)

	rows, err := fetchRows(context.Background(), db, `SELECT id, note FROM probe`)
	if err != nil {
		t.Fatalf("fetchRows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestFetchRows_QueryError(t *testing.T) {
	db := newProbeDB(t)

	if _, err := fetchRows(context.Background(), db, `SELECT nope FROM missing`); err == nil {
		t.Fatal("expected error for bad query")
	}
}

func TestColumnConversions(t *testing.T) {
	db := newProbeDB(t)
	ctx := context.Background()

	// A NULL note reads back as the empty string.
	if _, err := db.ExecContext(ctx, `INSERT INTO probe (note, stamp) VALUES (NULL, NULL)`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := fetchRows(ctx, db, `SELECT id, note, stamp FROM probe`)
	if err != nil {
		t.Fatalf("fetchRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]

	note, err := textColumn(row, "note")
	if err != nil {
		t.Fatalf("textColumn on NULL: %v", err)
	}
	if note != "" {
		t.Fatalf("expected empty string for NULL, got %q", note)
	}

	// Mismatched conversions report the column and the offending type.
	if _, err := intColumn(row, "note"); err == nil {
		t.Fatal("expected error converting NULL note to int")
	}
	if _, err := timeColumn(row, "note"); err == nil {
		t.Fatal("expected error converting note to time")
	}
	_, err = intColumn(row, "absent")
	if err == nil || !strings.Contains(err.Error(), "absent") {
		t.Fatalf("expected error naming the missing column, got %v", err)
	}
}
