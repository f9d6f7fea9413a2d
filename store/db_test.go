// File: store/db_test.go
package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		driver Driver
		prefix string
		err    bool
	}{
		{"absolute sqlite path", "sqlite:///var/lib/clan.db", DriverSQLite, "file:/var/lib/clan.db?", false},
		{"relative sqlite path", "sqlite://clan.db", DriverSQLite, "file:clan.db?", false},
		{"postgres", "postgres://u:p@localhost:5432/clan?sslmode=disable", DriverPostgres, "postgres://u:p@localhost", false},
		{"postgresql alias", "postgresql://localhost/clan", DriverPostgres, "postgresql://", false},
		{"empty", "", "", "", true},
		{"sqlite without path", "sqlite://", "", "", true},
		{"unknown scheme", "mysql://localhost/clan", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := ParseDSN(tt.url)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.True(t, strings.HasPrefix(dsn, tt.prefix), dsn)
		})
	}
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "UPDATE t SET a = $1, b = $2 WHERE id = $3",
		Rebind("UPDATE t SET a = ?, b = ? WHERE id = ?"))

	sqlite := &DB{Driver: DriverSQLite}
	assert.Equal(t, "SELECT 1 WHERE id = ?", sqlite.Rebind("SELECT 1 WHERE id = ?"))
	pg := &DB{Driver: DriverPostgres}
	assert.Equal(t, "SELECT 1 WHERE id = $1", pg.Rebind("SELECT 1 WHERE id = ?"))
}

func TestCreateTableSQL(t *testing.T) {
	pg := &DB{Driver: DriverPostgres}
	ddl := pg.createTableSQL(MembersTable, false)
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS team_members")
	assert.Contains(t, ddl, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, ddl, "stats JSONB")
	assert.Contains(t, ddl, "achievements TEXT[]")
	assert.Contains(t, ddl, "join_date TEXT")
	assert.Contains(t, ddl, "created_at TIMESTAMPTZ")

	sqlite := &DB{Driver: DriverSQLite}
	ddl = sqlite.createTableSQL(SettingsTable, true)
	assert.Contains(t, ddl, "id INTEGER PRIMARY KEY,")
	assert.Contains(t, ddl, "custom_css TEXT")
	assert.NotContains(t, ddl, "AUTOINCREMENT")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "join_date", snakeCase("joinDate"))
	assert.Equal(t, "preferred_position", snakeCase("preferredPosition"))
	assert.Equal(t, "name", snakeCase("name"))
}
