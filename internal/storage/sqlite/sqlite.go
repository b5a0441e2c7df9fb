// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // registers the "sqlite3" goqu dialect
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/dormshare/internal/storage"
)

const dialect = "sqlite3"

//go:embed migrations/*.sql
var migrations embed.FS

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// Options configures the SQLite connection.
type Options struct {
	// BusyTimeout is how long a connection waits on a locked database.
	BusyTimeout time.Duration
}

// DB is the subset of database/sql used by the store. Both *sql.DB and
// *sql.Tx satisfy it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the subset of goqu used to build queries. Both *goqu.Database and
// *goqu.TxDatabase satisfy it.
type Builder interface {
	From(from ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
	Delete(table any) *goqu.DeleteDataset
}

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	// db is either the *sql.DB or, inside WithTx, the *sql.Tx.
	db      DB
	builder Builder
}

// New opens the database at dbPath, creating parent directories, and applies
// pending migrations.
func New(dbPath string, opts Options) (*SQLiteStore, error) {
	db, err := Open(dbPath, opts)
	if err != nil {
		return nil, err
	}

	if err := Migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{
		db:      db,
		builder: goqu.Dialect(dialect).DB(db),
	}, nil
}

// Open opens the database without migrating it.
func Open(dbPath string, opts Options) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", dbPath, busy.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer; one connection serializes transactions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate applies all pending schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}
	return db.Close()
}

// WithTx runs cb against a transactional copy of the store.
func (s *SQLiteStore) WithTx(ctx context.Context, cb func(tx storage.AllStorage) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SQLiteStore{
		db:      tx,
		builder: goqu.NewTx(dialect, tx),
	}

	if err := cb(txStore); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// translate maps driver errors onto storage sentinels.
func translate(err error, what string) error {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("failed to %s: %w: %v", what, storage.ErrDuplicate, err)
		}
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

// mustAffect returns storage.ErrNotFound when res touched no rows.
func mustAffect(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
