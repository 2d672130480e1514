// Package database opens the libSQL/SQLite connection used by the SQL hotel store
package database

import (
	"context"
	"database/sql"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/KirkDiggler/hotel-api/internal/errors"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
}

// Open creates a SQLite connection via libSQL with WAL journaling, a 5 s
// busy timeout and foreign keys enabled.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("database path is required")
	}

	dsn := "file:" + path
	if path == MemoryPath {
		dsn = path
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	if path == MemoryPath {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	// libSQL rejects Exec for PRAGMAs that return rows; query and close instead.
	for _, p := range pragmas {
		rows, err := db.QueryContext(ctx, p)
		if err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to execute %s", p)
		}
		_ = rows.Close()
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping database")
	}

	return db, nil
}

// Checker adapts a database handle to the health endpoint
type Checker struct {
	DB *sql.DB
}

// Check pings the database
func (c Checker) Check(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
