package services

import (
	"context"
	"time"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// TransferProcessorInterface authorizes and applies encrypted transfers
type TransferProcessorInterface interface {
	// ProcessTransfer decrypts, validates and applies a transfer exactly once
	// per distinct payload. A byte-identical resubmission returns the stored
	// outcome without moving money again.
	ProcessTransfer(ctx context.Context, userID uuid.UUID, payload dto.EncryptedPayload) (*models.TransferRecord, error)
	GetTransfer(ctx context.Context, userID, transferID uuid.UUID) (*models.TransferRecord, error)
}

// CardServiceInterface manages the caller's NFC cards
type CardServiceInterface interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	SetCardActive(ctx context.Context, userID, cardID uuid.UUID, active bool) (*models.Card, error)
}

// AccountQueryServiceInterface serves the read-only lookups of the transfer flow
type AccountQueryServiceInterface interface {
	FindAccountsByNumber(ctx context.Context, accountNumber string) ([]models.Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AuditLoggerInterface emits structured audit events. Card codes, keys and
// decrypted payloads are never passed in.
type AuditLoggerInterface interface {
	LogTransferReceived(ctx context.Context, idempotencyKey string, userID uuid.UUID)
	LogTransferCompleted(ctx context.Context, record *models.TransferRecord, durationMs int64)
	LogTransferFailed(ctx context.Context, record *models.TransferRecord, durationMs int64)
	LogTransferRejected(ctx context.Context, userID uuid.UUID, reason string, durationMs int64)
	LogTransferReplayed(ctx context.Context, record *models.TransferRecord)
	LogCardStatusChange(ctx context.Context, cardID, userID uuid.UUID, active bool)
}
