package repositories

import (
	"context"
	"errors"
	"fmt"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.WithContext(ctx).First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// FindByNumber retrieves accounts whose number matches exactly
func (r *accountRepository) FindByNumber(ctx context.Context, accountNumber string) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to find accounts by number: %w", err)
	}
	return accounts, nil
}

// ListByOwner retrieves all accounts of a user, oldest first
func (r *accountRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC, account_number ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}
