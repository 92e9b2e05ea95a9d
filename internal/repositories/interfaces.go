package repositories

import (
	"context"
	"time"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// FindByNumber matches the account number exactly and may return an empty list
	FindByNumber(ctx context.Context, accountNumber string) ([]models.Account, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
}

// ProfileRepositoryInterface defines the contract for profile repository operations
type ProfileRepositoryInterface interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// CardRepositoryInterface defines the contract for NFC card repository operations
type CardRepositoryInterface interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Card, error)
}

// TransferRepositoryInterface defines the contract for transfer record operations.
// Records are append-only: there is no update or delete.
type TransferRepositoryInterface interface {
	Create(ctx context.Context, record *models.TransferRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransferRecord, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.TransferRecord, error)
	// ExecuteTransfer debits the sender, credits the recipient and inserts the
	// record as completed, all in one database transaction.
	ExecuteTransfer(ctx context.Context, record *models.TransferRecord) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByResource(ctx context.Context, resource, resourceID string) ([]*models.AuditLog, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
