// Package sqlite opens the catalog's SQLite database and holds the helpers the
// SQLite repositories share: transactions, timestamps and constraint
// classification.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/storage/sqlite/migrations"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// DB is an open catalog database with migrations applied
type DB struct {
	sqlDB *sql.DB
}

// Open opens the SQLite database at path and applies the embedded migrations.
// Foreign keys are enforced on every pooled connection.
func Open(ctx context.Context, path string) (*DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	pragmas := "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	dsn := path + pragmas
	if path != MemoryPath {
		dsn = filepath.Clean(path) + pragmas + "&_pragma=journal_mode(WAL)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryPath {
		// each connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ApplyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &DB{sqlDB: sqlDB}, nil
}

// SQL returns the underlying handle
func (db *DB) SQL() *sql.DB {
	return db.sqlDB
}

// Close closes the SQLite handle.
func (db *DB) Close() error {
	if db == nil || db.sqlDB == nil {
		return nil
	}
	return db.sqlDB.Close()
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ToMillis converts a timestamp to the stored representation
func ToMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// FromMillis converts a stored timestamp back to UTC time
func FromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func constraintCode(err error) (int, bool) {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code(), true
	}
	return 0, false
}

// IsPrimaryKeyViolation reports a duplicate composite or primary key
func IsPrimaryKeyViolation(err error) bool {
	code, ok := constraintCode(err)
	if ok {
		return code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// IsForeignKeyViolation reports a referential integrity failure. SQLite
// raises ON DELETE RESTRICT through its trigger machinery, so that case
// arrives as SQLITE_CONSTRAINT_TRIGGER and is told apart by its message.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	foreignKeyMessage := strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
	code, ok := constraintCode(err)
	if !ok {
		return foreignKeyMessage
	}
	switch {
	case code == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	case code&0xff == sqlite3lib.SQLITE_CONSTRAINT:
		return foreignKeyMessage
	default:
		return false
	}
}

// IsCheckViolation reports a failed CHECK constraint
func IsCheckViolation(err error) bool {
	code, ok := constraintCode(err)
	if ok {
		return code == sqlite3lib.SQLITE_CONSTRAINT_CHECK
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "check constraint failed")
}

// Placeholders returns n comma separated bind markers
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
