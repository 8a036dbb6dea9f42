package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// rawRow is one storage row as a loosely-typed column-to-value
// mapping, exactly as the driver returned it.
type rawRow map[string]any

// rowQuerier is the capability the mapper needs from a storage handle.
// Both *sql.DB and *sql.Tx satisfy it.
type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// fetchRows runs query and returns every result row as a rawRow. It is
// the storage-adapter half of the mapper: nothing above it touches
// *sql.Rows or driver value types.
func fetchRows(ctx context.Context, q rowQuerier, query string, args ...any) ([]rawRow, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []rawRow
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(rawRow, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func intColumn(row rawRow, col string) (int64, error) {
	v, ok := row[col].(int64)
	if !ok {
		return 0, fmt.Errorf("column %s: unexpected type %T", col, row[col])
	}
	return v, nil
}

func textColumn(row rawRow, col string) (string, error) {
	switch v := row[col].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("column %s: unexpected type %T", col, row[col])
	}
}

func timeColumn(row rawRow, col string) (time.Time, error) {
	v, ok := row[col].(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("column %s: unexpected type %T", col, row[col])
	}
	return v, nil
}
