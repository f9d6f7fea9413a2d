// File: store/sql_settings.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-clan-admin/models"
)

// settingsRowID is the id of the only row in the settings table.
const settingsRowID = 1

// SQLSettings keeps the singleton settings in row 1 of the settings table.
type SQLSettings struct {
	db *DB
}

// NewSQLSettings wraps db. Migrate seeds the row.
func NewSQLSettings(db *DB) *SQLSettings {
	return &SQLSettings{db: db}
}

// Get loads the settings row, falling back to the defaults when it is missing.
func (s *SQLSettings) Get(ctx context.Context) (models.Settings, error) {
	query := fmt.Sprintf("SELECT id, created_at, updated_at, %s FROM %s WHERE id = ?",
		strings.Join(SettingsTable.columnNames(), ", "), SettingsTable.Name)
	row := s.db.QueryRowContext(ctx, s.db.Rebind(query), settingsRowID)
	settings, err := decodeRow[models.Settings](s.db, SettingsTable, row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return settings, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update writes the patched columns of the settings row.
func (s *SQLSettings) Update(ctx context.Context, patch Patch) (bool, error) {
	sets, args, err := patchColumns[models.Settings](s.db, SettingsTable, patch)
	if err != nil {
		return false, err
	}
	if err := s.seed(ctx); err != nil {
		return false, err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, timeNow().Truncate(time.Microsecond), settingsRowID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", SettingsTable.Name, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return false, fmt.Errorf("update settings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// seed inserts the default settings row if it does not exist yet.
func (s *SQLSettings) seed(ctx context.Context) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		s.db.Rebind("SELECT COUNT(*) FROM "+SettingsTable.Name+" WHERE id = ?"), settingsRowID).Scan(&count)
	if err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := timeNow().Truncate(time.Microsecond)
	defaults := models.DefaultSettings()
	defaults.UpdatedAt = now
	fields, err := toFields(defaults)
	if err != nil {
		return err
	}
	args, err := s.db.recordArgs(SettingsTable, fields)
	if err != nil {
		return err
	}
	args = append([]any{settingsRowID}, args...)
	args = append(args, now, now)

	cols := append([]string{"id"}, SettingsTable.columnNames()...)
	cols = append(cols, "created_at", "updated_at")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		SettingsTable.Name, strings.Join(cols, ", "), placeholders(len(cols)))
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}
