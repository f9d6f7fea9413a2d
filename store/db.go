// File: store/db.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-clan-admin/logger"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names a database/sql driver this package can talk to.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

const (
	connectAttempts = 10
	connectBackoff  = time.Second
)

// DB is a connection pool plus the dialect it speaks.
type DB struct {
	*sql.DB
	Driver Driver
}

// ParseDSN maps a DATABASE_URL to a driver and its data source name.
// sqlite:// URLs carry a file path; postgres:// and postgresql:// URLs
// are handed to lib/pq unchanged.
func ParseDSN(databaseURL string) (Driver, string, error) {
	raw := strings.TrimSpace(databaseURL)
	switch {
	case raw == "":
		return "", "", fmt.Errorf("database url is empty")
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url has no path")
		}
		return DriverSQLite, fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite", path), nil
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	default:
		return "", "", fmt.Errorf("unsupported database url scheme: %q", raw)
	}
}

// Connect opens the pool and waits until the server answers a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	driver, dsn, err := ParseDSN(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One writer at a time; sqlite locks the whole file anyway.
		pool.SetMaxOpenConns(1)
	} else {
		pool.SetMaxOpenConns(10)
		pool.SetMaxIdleConns(5)
		pool.SetConnMaxLifetime(30 * time.Minute)
	}

	for attempt := 1; ; attempt++ {
		err = pool.PingContext(ctx)
		if err == nil {
			break
		}
		if attempt == connectAttempts {
			pool.Close()
			return nil, fmt.Errorf("ping %s: %w", driver, err)
		}
		logger.Warn.Printf("Database not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}

	logger.Info.Printf("Connected to %s database", driver)
	return &DB{DB: pool, Driver: driver}, nil
}

// IsPostgres reports whether the pool talks to PostgreSQL.
func (db *DB) IsPostgres() bool { return db.Driver == DriverPostgres }

// Rebind converts ? placeholders into $1, $2 ... for PostgreSQL.
func (db *DB) Rebind(query string) string {
	if !db.IsPostgres() {
		return query
	}
	return Rebind(query)
}

// Rebind rewrites ? placeholders as numbered $n parameters.
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
