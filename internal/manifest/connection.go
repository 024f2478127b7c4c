// Package manifest provides access to a backup's manifest database, the
// SQLite index that maps content-addressed blobs to domains and logical
// paths.
package manifest

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/bdig/bdig/db/migrations"
	sqldb "github.com/bdig/bdig/internal/manifest/sqlc"

	// Import SQLite driver for database/sql
	_ "modernc.org/sqlite"
)

// FileName is the well-known name of the manifest database inside a backup
// directory.
const FileName = "Manifest.db"

// Context holds the manifest database connection and query interface.
type Context struct {
	DB      *sql.DB
	Queries *sqldb.Queries
}

// Open connects to the manifest database of an existing backup directory.
// The manifest is treated as read-only input: no migrations are applied and
// the schema is taken as-is.
func Open(backupDir string) (*Context, error) {
	manifestPath := filepath.Join(backupDir, FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in backup directory %s", FileName, backupDir)
		}
		return nil, fmt.Errorf("failed to stat manifest: %w", err)
	}

	return open(manifestPath)
}

// Create initialises a new manifest database at the given path, applying the
// embedded schema migrations. Used for building fixture manifests and by
// tests; the query engine itself never writes to an existing manifest.
func Create(path string) (*Context, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create manifest directory: %w", err)
	}

	ctx, err := open(path)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx.DB); err != nil {
		_ = ctx.DB.Close()
		return nil, err
	}

	return ctx, nil
}

func open(path string) (*Context, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)", filepath.ToSlash(absPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping manifest database: %w", err)
	}

	return &Context{
		DB:      db,
		Queries: sqldb.New(db),
	}, nil
}

// Close closes the manifest database connection.
func Close(ctx *Context) error {
	if ctx == nil || ctx.DB == nil {
		return nil
	}
	return ctx.DB.Close()
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialise migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	defer func() {
		_ = sourceDriver.Close()
	}()

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
