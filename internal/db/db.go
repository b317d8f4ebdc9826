package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is used when Open is called with an empty path.
const DefaultPath = "scheduler.db"

//go:embed schema.sql
var schemaSQL string

// Open opens (or creates) a local SQLite database file and creates the
// users and tasks tables if they are absent.
//
// Foreign keys are left disabled: tasks.user_id is a soft reference and
// writes must not fail when the referenced user does not exist.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := Initialize(ctx, d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// Initialize applies the embedded schema in a single transaction.
// Every statement is create-if-absent, so it is safe to run on each start.
func Initialize(ctx context.Context, d *sql.DB) error {
	if d == nil {
		return errors.New("nil db")
	}
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(schemaSQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("initialize schema: %w", err)
		}
	}
	return tx.Commit()
}

// Ping reports whether the database is reachable.
func Ping(ctx context.Context, d *sql.DB) error {
	if d == nil {
		return errors.New("nil db")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.PingContext(ctx)
}

func splitStatements(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
