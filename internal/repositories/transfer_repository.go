package repositories

import (
	"context"
	"errors"
	"fmt"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransferNotFound             = errors.New("transfer not found")
	ErrTransferIdempotencyKeyExists = errors.New("transfer with idempotency key already exists")
	ErrInsufficientFunds            = models.ErrInsufficientFunds
	ErrCurrencyMismatch             = errors.New("accounts use different currencies")
)

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{
		db: db,
	}
}

// Create inserts a record as is. Used for failed outcomes, which move no money.
func (r *transferRepository) Create(ctx context.Context, record *models.TransferRecord) error {
	if record == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrTransferIdempotencyKeyExists
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

// GetByID retrieves a transfer by ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransferRecord, error) {
	record := &models.TransferRecord{ID: id}
	if err := r.db.WithContext(ctx).First(record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by ID: %w", err)
	}

	return record, nil
}

// FindByIdempotencyKey retrieves a transfer by idempotency key
func (r *transferRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.TransferRecord, error) {
	var record models.TransferRecord

	if err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by idempotency key: %w", err)
	}

	return &record, nil
}

// ExecuteTransfer applies a pending record. Both accounts are locked with
// SELECT ... FOR UPDATE in ascending id order so two opposite transfers can
// not deadlock. The balance is checked again under the lock. On any error
// the transaction rolls back and the record is left pending in memory.
func (r *transferRepository) ExecuteTransfer(ctx context.Context, record *models.TransferRecord) error {
	if record == nil {
		return errors.New("transfer cannot be nil")
	}
	if record.FromAccountID == nil || record.ToAccountID == nil {
		return ErrAccountNotFound
	}

	fromID, toID := *record.FromAccountID, *record.ToAccountID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked := make(map[uuid.UUID]*models.Account, 2)
		for _, id := range lockOrder(fromID, toID) {
			account := &models.Account{}
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).First(account).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrAccountNotFound
				}
				return fmt.Errorf("failed to lock account: %w", err)
			}
			locked[id] = account
		}

		fromAcct, toAcct := locked[fromID], locked[toID]
		if fromAcct.Currency != toAcct.Currency {
			return ErrCurrencyMismatch
		}

		if err := fromAcct.Debit(record.Amount); err != nil {
			return err
		}
		if err := toAcct.Credit(record.Amount); err != nil {
			return err
		}

		if err := tx.Model(fromAcct).Updates(map[string]interface{}{"balance": fromAcct.Balance}).Error; err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}
		if err := tx.Model(toAcct).Updates(map[string]interface{}{"balance": toAcct.Balance}).Error; err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		completed := *record
		if err := completed.Complete(); err != nil {
			return err
		}
		if err := tx.Create(&completed).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrTransferIdempotencyKeyExists
			}
			return fmt.Errorf("failed to create transfer: %w", err)
		}

		*record = completed
		return nil
	})
}

// lockOrder returns the two ids sorted ascending by their string form
func lockOrder(a, b uuid.UUID) []uuid.UUID {
	if a.String() > b.String() {
		return []uuid.UUID{b, a}
	}
	return []uuid.UUID{a, b}
}
