package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"nfc-transfer-service/internal/config"
	"nfc-transfer-service/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Open connects GORM to Postgres with the pool limits from cfg
func Open(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// AutoMigrate creates the schema from the GORM models. It backs SQLite tests
// and is the fallback when the SQL migrations cannot run.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Profile{},
		&models.Account{},
		&models.Card{},
		&models.TransferRecord{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_account_number ON accounts(account_number)",
	"CREATE INDEX IF NOT EXISTS idx_nfc_cards_user_id ON nfc_cards(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_nfc_cards_active ON nfc_cards(user_id) WHERE is_active",
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_idempotency_key ON transactions(idempotency_key)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_from_account_id ON transactions(from_account_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_to_account_id ON transactions(to_account_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_id ON audit_logs(user_id)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
}

// CreateIndexes makes sure the lookup and idempotency indexes exist. It
// returns the number of statements that failed.
func (db *DB) CreateIndexes(log *slog.Logger) int {
	failed := 0
	for _, query := range indexes {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warn("failed to create index", "query", query, "error", err)
			failed++
		}
	}
	return failed
}

// OpenMigrationConn opens a plain database/sql connection through lib/pq
func OpenMigrationConn(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// Initialize connects and brings the schema up to date. With AutoMigrate set
// the SQL migrations run first and GORM AutoMigrate is only the fallback.
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := Open(&cfg.Database, level)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		err = runMigrations(cfg, log)
		if err != nil {
			log.Warn("SQL migrations failed, falling back to AutoMigrate", "error", err)
		}
	}
	if !cfg.Database.AutoMigrate || err != nil {
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	db.CreateIndexes(log)
	return db, nil
}

func runMigrations(cfg *config.Config, log *slog.Logger) error {
	conn, err := OpenMigrationConn(&cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	migrator := NewMigrator(conn, log,
		WithMigrationsDir(cfg.Database.MigrationsDir),
		WithSeedsDir(cfg.Database.SeedsDir),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migrator.WaitReady(ctx); err != nil {
		return err
	}
	if err := migrator.Up(); err != nil {
		return err
	}

	if cfg.Database.Seed {
		if err := migrator.Seed(ctx); err != nil {
			log.Warn("seeding failed", "error", err)
		}
	}
	return nil
}
