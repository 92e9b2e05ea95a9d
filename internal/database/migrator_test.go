package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestNewMigrator_Defaults(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, quietLogger())

	assert.Equal(t, "db/migrations", m.migrationsDir)
	assert.Equal(t, "db/seeds", m.seedsDir)
	assert.Equal(t, 30, m.pingAttempts)

	m = NewMigrator(db, quietLogger(), WithMigrationsDir("/m"), WithSeedsDir("/s"), WithPingRetry(3, time.Millisecond))
	assert.Equal(t, "/m", m.migrationsDir)
	assert.Equal(t, "/s", m.seedsDir)
	assert.Equal(t, 3, m.pingAttempts)
	assert.Equal(t, time.Millisecond, m.pingInterval)
}

func TestWaitReady(t *testing.T) {
	t.Run("ready on second ping", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing()

		m := NewMigrator(db, quietLogger(), WithPingRetry(3, time.Millisecond))

		assert.NoError(t, m.WaitReady(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		m := NewMigrator(db, quietLogger(), WithPingRetry(2, time.Millisecond))
		err = m.WaitReady(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not ready after 2 attempts")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := NewMigrator(db, quietLogger(), WithPingRetry(5, time.Hour))
		err = m.WaitReady(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestUp_MissingDirectoryIsSkipped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, quietLogger(), WithMigrationsDir(filepath.Join(t.TempDir(), "none")))

	assert.NoError(t, m.Up())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersion_MissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, quietLogger(), WithMigrationsDir(filepath.Join(t.TempDir(), "none")))

	_, _, err = m.Version()
	assert.ErrorIs(t, err, ErrMigrationsDirMissing)
}

func TestSeed(t *testing.T) {
	t.Run("runs files in name order, one transaction each", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "002_cards.sql", "INSERT INTO nfc_cards VALUES (2);")
		writeSeed(t, dir, "001_profiles.sql", "INSERT INTO profiles VALUES (1);")
		writeSeed(t, dir, "README.md", "not sql")

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO profiles").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO nfc_cards").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		m := NewMigrator(db, quietLogger(), WithSeedsDir(dir))

		assert.NoError(t, m.Seed(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first failure rolls back and stops", func(t *testing.T) {
		dir := t.TempDir()
		writeSeed(t, dir, "001_profiles.sql", "INSERT INTO profiles VALUES (1);")
		writeSeed(t, dir, "002_cards.sql", "INSERT INTO nfc_cards VALUES (2);")

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO profiles").WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		m := NewMigrator(db, quietLogger(), WithSeedsDir(dir))
		err = m.Seed(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "001_profiles.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing directory is skipped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		m := NewMigrator(db, quietLogger(), WithSeedsDir(filepath.Join(t.TempDir(), "none")))

		assert.NoError(t, m.Seed(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty directory", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		m := NewMigrator(db, quietLogger(), WithSeedsDir(t.TempDir()))

		assert.NoError(t, m.Seed(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
