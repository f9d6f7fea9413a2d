// File: store/sql.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLStore keeps one collection in a relational table. Ids come from the
// database sequence.
type SQLStore[T any, P Record[T]] struct {
	db    *DB
	table Table
}

// NewSQLStore binds a record type to its table. Run Migrate first.
func NewSQLStore[T any, P Record[T]](db *DB, table Table) *SQLStore[T, P] {
	return &SQLStore[T, P]{db: db, table: table}
}

func (s *SQLStore[T, P]) selectSQL() string {
	return fmt.Sprintf("SELECT id, created_at, updated_at, %s FROM %s",
		strings.Join(s.table.columnNames(), ", "), s.table.Name)
}

// List returns every row in the table's display order.
func (s *SQLStore[T, P]) List(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.selectSQL()+" ORDER BY "+s.table.orderBy())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table.Name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := decodeRow[T](s.db, s.table, rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table.Name, err)
	}
	return out, nil
}

// Get loads one row.
func (s *SQLStore[T, P]) Get(ctx context.Context, id int64) (T, bool, error) {
	row := s.db.QueryRowContext(ctx, s.db.Rebind(s.selectSQL()+" WHERE id = ?"), id)
	rec, err := decodeRow[T](s.db, s.table, row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		return rec, false, fmt.Errorf("get %s %d: %w", s.table.Name, id, err)
	}
	return rec, true, nil
}

// Create inserts rec and returns it with its generated id.
func (s *SQLStore[T, P]) Create(ctx context.Context, rec T) (T, error) {
	now := timeNow().Truncate(time.Microsecond)
	created := clone(rec)
	P(&created).ApplyDefaults(now)

	fields, err := toFields(created)
	if err != nil {
		return created, err
	}
	args, err := s.db.recordArgs(s.table, fields)
	if err != nil {
		return created, err
	}
	args = append(args, now, now)

	cols := append(s.table.columnNames(), "created_at", "updated_at")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		s.table.Name, strings.Join(cols, ", "), placeholders(len(cols)))

	var id int64
	if err := s.db.QueryRowContext(ctx, s.db.Rebind(query), args...).Scan(&id); err != nil {
		return created, fmt.Errorf("insert %s: %w", s.table.Name, err)
	}
	P(&created).Assign(id, now)
	return created, nil
}

// Update writes only the columns named by patch, plus updated_at.
func (s *SQLStore[T, P]) Update(ctx context.Context, id int64, patch Patch) (bool, error) {
	sets, args, err := patchColumns[T](s.db, s.table, patch)
	if err != nil {
		return false, err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timeNow().Truncate(time.Microsecond), id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.table.Name, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("update %s %d: %w", s.table.Name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes one row.
func (s *SQLStore[T, P]) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM "+s.table.Name+" WHERE id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("delete %s %d: %w", s.table.Name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// patchColumns validates patch against T and returns "col = ?" fragments
// with their arguments. Immutable and unknown fields are skipped.
func patchColumns[T any](db *DB, t Table, patch Patch) ([]string, []any, error) {
	decoded, err := decodePatch[T](patch)
	if err != nil {
		return nil, nil, err
	}
	fields, err := toFields(decoded)
	if err != nil {
		return nil, nil, err
	}

	var sets []string
	var args []any
	seen := map[string]bool{}
	for key := range patch {
		if isImmutable(key) {
			continue
		}
		c, ok := t.columnFor(key)
		if !ok || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		arg, err := db.columnArg(c, fields[c.Field])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidPatch, key, err)
		}
		sets = append(sets, c.Name+" = ?")
		args = append(args, arg)
	}
	return sets, args, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
