package models

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
)

const (
	TransferTypeTransfer   = "transfer"
	TransferTypeDeposit    = "deposit"
	TransferTypeWithdrawal = "withdrawal"
)

var (
	ErrInvalidTransferStatus   = errors.New("invalid transfer status")
	ErrInvalidTransferType     = errors.New("invalid transfer type")
	ErrIdempotencyKeyRequired  = errors.New("idempotency key is required")
	ErrInvalidStatusTransition = errors.New("invalid transfer status transition")
	ErrIncompleteTransfer      = errors.New("completed transfer requires distinct sender, recipient and a positive amount")
)

// TransferRecord is the durable, append-only outcome of a processed transfer.
// Either account id may be nil for legs that originate outside the system or
// for failed requests that referenced an unknown account.
type TransferRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FromAccountID  *uuid.UUID      `gorm:"type:uuid;index" json:"from_account_id,omitempty"`
	ToAccountID    *uuid.UUID      `gorm:"type:uuid;index" json:"to_account_id,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type           string          `gorm:"column:transaction_type;type:varchar(20);not null" json:"transaction_type"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CardID         *uuid.UUID      `gorm:"type:uuid" json:"card_id,omitempty"`
	IdempotencyKey string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	FailureReason  *string         `gorm:"type:text" json:"failure_reason,omitempty"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	FailedAt       *time.Time      `json:"failed_at,omitempty"`
}

// NewTransferRecord starts a pending record for the given idempotency key
func NewTransferRecord(idempotencyKey string, intent TransferIntent) *TransferRecord {
	record := &TransferRecord{
		ID:             uuid.New(),
		Amount:         intent.Amount,
		Type:           intent.Type,
		Status:         TransferStatusPending,
		IdempotencyKey: idempotencyKey,
	}
	if intent.FromAccountID != uuid.Nil {
		from := intent.FromAccountID
		record.FromAccountID = &from
	}
	if intent.ToAccountID != uuid.Nil {
		to := intent.ToAccountID
		record.ToAccountID = &to
	}
	if intent.CardID != uuid.Nil {
		card := intent.CardID
		record.CardID = &card
	}
	if record.Type == "" {
		record.Type = TransferTypeTransfer
	}
	return record
}

func (t *TransferRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransferStatusPending
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate rejects every update: records are append-only.
func (t *TransferRecord) BeforeUpdate(tx *gorm.DB) error {
	return fmt.Errorf("transfer record %s is append-only", t.ID)
}

// BeforeDelete rejects every delete.
func (t *TransferRecord) BeforeDelete(tx *gorm.DB) error {
	return fmt.Errorf("transfer record %s is append-only", t.ID)
}

func (t *TransferRecord) Validate() error {
	if t.IdempotencyKey == "" {
		return ErrIdempotencyKeyRequired
	}

	if !IsValidTransferStatus(t.Status) {
		return ErrInvalidTransferStatus
	}

	if !IsValidTransferType(t.Type) {
		return ErrInvalidTransferType
	}

	if t.Status == TransferStatusCompleted && t.Type == TransferTypeTransfer {
		if t.FromAccountID == nil || t.ToAccountID == nil ||
			*t.FromAccountID == *t.ToAccountID || !t.Amount.IsPositive() {
			return ErrIncompleteTransfer
		}
	}

	return nil
}

func (t *TransferRecord) IsPending() bool {
	return t.Status == TransferStatusPending
}

func (t *TransferRecord) IsCompleted() bool {
	return t.Status == TransferStatusCompleted
}

func (t *TransferRecord) IsFailed() bool {
	return t.Status == TransferStatusFailed
}

// Complete moves a pending record to completed
func (t *TransferRecord) Complete() error {
	if !t.CanTransitionTo(TransferStatusCompleted) {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	t.Status = TransferStatusCompleted
	t.CompletedAt = &now
	return nil
}

// Fail moves a pending record to failed with a reason
func (t *TransferRecord) Fail(reason string) error {
	if !t.CanTransitionTo(TransferStatusFailed) {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	t.Status = TransferStatusFailed
	t.FailedAt = &now
	t.FailureReason = &reason
	return nil
}

// CanTransitionTo reports whether newStatus is reachable from the current status.
// Completed and failed are terminal.
func (t *TransferRecord) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransferStatusPending:   {TransferStatusCompleted, TransferStatusFailed},
		TransferStatusCompleted: {},
		TransferStatusFailed:    {},
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// Involves reports whether accountID is either leg of the transfer
func (t *TransferRecord) Involves(accountID uuid.UUID) bool {
	return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
		(t.ToAccountID != nil && *t.ToAccountID == accountID)
}

func (t *TransferRecord) TableName() string {
	return "transactions"
}

func IsValidTransferStatus(status string) bool {
	switch status {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusFailed:
		return true
	default:
		return false
	}
}

func IsValidTransferType(transferType string) bool {
	switch transferType {
	case TransferTypeTransfer, TransferTypeDeposit, TransferTypeWithdrawal:
		return true
	default:
		return false
	}
}
