package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrMigrationsDirMissing is returned by Version when there is nothing to inspect
var ErrMigrationsDirMissing = errors.New("migrations directory not found")

// Migrator applies the SQL migrations under db/migrations and loads the demo
// seeds. It works on a plain database/sql handle so golang-migrate can own
// the connection's advisory lock.
type Migrator struct {
	db            *sql.DB
	logger        *slog.Logger
	migrationsDir string
	seedsDir      string
	pingAttempts  int
	pingInterval  time.Duration
}

type MigratorOption func(*Migrator)

func WithMigrationsDir(dir string) MigratorOption {
	return func(m *Migrator) { m.migrationsDir = dir }
}

func WithSeedsDir(dir string) MigratorOption {
	return func(m *Migrator) { m.seedsDir = dir }
}

// WithPingRetry sets how long WaitReady keeps trying
func WithPingRetry(attempts int, interval time.Duration) MigratorOption {
	return func(m *Migrator) {
		m.pingAttempts = attempts
		m.pingInterval = interval
	}
}

func NewMigrator(db *sql.DB, logger *slog.Logger, opts ...MigratorOption) *Migrator {
	m := &Migrator{
		db:            db,
		logger:        logger,
		migrationsDir: "db/migrations",
		seedsDir:      "db/seeds",
		pingAttempts:  30,
		pingInterval:  2 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WaitReady pings until the database answers
func (m *Migrator) WaitReady(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= m.pingAttempts; attempt++ {
		if lastErr = m.db.PingContext(ctx); lastErr == nil {
			return nil
		}

		m.logger.Info("database not ready", "attempt", attempt, "max_attempts", m.pingAttempts, "error", lastErr)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(m.pingInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", m.pingAttempts, lastErr)
}

// Up applies pending migrations. A dirty version is forced back before
// retrying, since every migration runs in its own transaction.
func (m *Migrator) Up() error {
	if !dirExists(m.migrationsDir) {
		m.logger.Warn("migrations directory not found, skipping", "dir", m.migrationsDir)
		return nil
	}

	mg, err := m.open()
	if err != nil {
		return err
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		m.logger.Warn("database is dirty, forcing version", "version", version)
		if err := mg.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	if err := mg.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("schema up to date", "version", version)
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := mg.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	m.logger.Info("migrations applied", "from", version, "to", newVersion)
	return nil
}

// Seed runs every *.sql file in the seeds directory in name order, each in
// its own transaction. The first failing file stops seeding.
func (m *Migrator) Seed(ctx context.Context) error {
	if !dirExists(m.seedsDir) {
		m.logger.Warn("seeds directory not found, skipping", "dir", m.seedsDir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", filepath.Base(file), err)
		}
		if err := m.execSeed(ctx, string(content)); err != nil {
			return fmt.Errorf("seed file %s: %w", filepath.Base(file), err)
		}
		m.logger.Info("seed file applied", "file", filepath.Base(file))
	}
	return nil
}

// Version reports the applied migration version
func (m *Migrator) Version() (uint, bool, error) {
	if !dirExists(m.migrationsDir) {
		return 0, false, ErrMigrationsDirMissing
	}

	mg, err := m.open()
	if err != nil {
		return 0, false, err
	}
	return mg.Version()
}

func (m *Migrator) execSeed(ctx context.Context, statements string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, statements); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(m.migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}

	mg, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return mg, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
