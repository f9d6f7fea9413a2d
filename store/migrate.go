// File: store/migrate.go
package store

import (
	"context"
	"fmt"

	"go-clan-admin/logger"
)

// Migrate creates any missing tables and seeds the settings row. It is safe
// to run on every start.
func Migrate(ctx context.Context, db *DB) error {
	for _, t := range collectionTables {
		if _, err := db.ExecContext(ctx, db.createTableSQL(t, false)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	if _, err := db.ExecContext(ctx, db.createTableSQL(SettingsTable, true)); err != nil {
		return fmt.Errorf("create table %s: %w", SettingsTable.Name, err)
	}
	if err := NewSQLSettings(db).seed(ctx); err != nil {
		return err
	}
	logger.Info.Printf("Database schema ready (%d tables)", len(collectionTables)+1)
	return nil
}
