// Package database owns the connection to the relational store, its schema
// migrations and the user/book accessors built on top of it.
package database

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

//go:embed migrations
var migrationsFS embed.FS

type DB struct {
	*sqlx.DB
}

// Open connects to the store without touching the schema.
func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		var err error
		if dsn, err = sqliteDSN(dsn); err != nil {
			return nil, err
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return &DB{DB: db}, nil
}

// Init opens the store and applies every pending migration, so the users and
// books tables exist once it returns.
func Init(driver, dsn string) (*DB, error) {
	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) MigrateUp() error {
	m, err := db.migrator()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (db *DB) MigrateDown() error {
	m, err := db.migrator()
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// The migrator is never closed: closing it would close db as well.
func (db *DB) migrator() (*migrate.Migrate, error) {
	name := db.DriverName()

	dir := "migrations/sqlite"
	if name == DriverPostgres {
		dir = "migrations/postgres"
	}
	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	switch name {
	case DriverSQLite:
		driver, err := sqlitemigrate.WithInstance(db.DB.DB, &sqlitemigrate.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to prepare sqlite migrations: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, name, driver)
	case DriverPostgres:
		driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to prepare postgres migrations: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, name, driver)
	}
	return nil, fmt.Errorf("unsupported database driver %q", name)
}

// sqliteDSN turns a plain path into a DSN with foreign keys and a busy
// timeout enabled. DSNs already in URI form are used as given.
func sqliteDSN(path string) (string, error) {
	if strings.HasPrefix(path, "file:") {
		return path, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create db dir: %w", err)
		}
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path), nil
}
